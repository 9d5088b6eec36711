package transport

import (
	"net/http"
	"strings"

	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	utilsContext "github.com/muhammadheryan/verified-commerce/utils/context"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
)

// CreateVerification handler
// @Summary Verify a product
// @Description Accepts JSON or multipart/form-data with an optional image.
// @Tags Verification
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param productId formData string true "Product id"
// @Param image formData file false "Proof image (also accepted as verificationImage)"
// @Success 201 {object} model.VerificationResponse
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/verification [post]
func (rh *RestHandler) CreateVerification(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var (
		req   model.CreateVerificationRequest
		image *model.UploadFile
	)
	if isMultipart(r) {
		if err := parseMultipart(r); err != nil {
			writeError(w, err)
			return
		}
		req.ProductID = formString(r, "productId")
		image = formFile(r, "image")
		if image == nil {
			image = formFile(r, "verificationImage")
		}
	} else if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	req.ProductID = strings.TrimSpace(req.ProductID)

	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := rh.VerificationApp.Create(r.Context(), userID, &req, image)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListVerifications handler
// @Summary List verifications
// @Tags Verification
// @Produce json
// @Security BearerAuth
// @Param userId query string false "User id"
// @Param productId query string false "Product id"
// @Param phone query string false "Phone"
// @Success 200 {object} model.VerificationListResponse
// @Failure 403 {object} Response
// @Router /api/verification [get]
func (rh *RestHandler) ListVerifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := rh.VerificationApp.List(r.Context(), &model.VerificationFilter{
		UserID:    strings.TrimSpace(q.Get("userId")),
		ProductID: strings.TrimSpace(q.Get("productId")),
		Phone:     strings.TrimSpace(q.Get("phone")),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListMyVerifications handler
// @Summary List my verifications
// @Tags Verification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.VerificationListResponse
// @Failure 401 {object} Response
// @Router /api/verification/me [get]
func (rh *RestHandler) ListMyVerifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	res, err := rh.VerificationApp.ListMine(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
