package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
	utilsContext "github.com/muhammadheryan/verified-commerce/utils/context"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
)

// Signup handler
// @Summary Register user
// @Description Register a new user and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 201 {object} model.SignupResponse
// @Failure 400 {object} Response
// @Router /api/auth/signup [post]
func (rh *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := rh.UserApp.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /api/auth/login [post]
func (rh *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := rh.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Revoke the token used for this request
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /api/auth/logout [post]
func (rh *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := utilsContext.GetClaims(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if err := rh.UserApp.Logout(r.Context(), claims); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// Me handler
// @Summary Current user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserEntity
// @Failure 401 {object} Response
// @Router /api/auth/me [get]
func (rh *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	res, err := rh.UserApp.Me(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListUsers handler
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id query string false "User id"
// @Param email query string false "Email"
// @Param role query string false "Role" Enums(user, admin)
// @Success 200 {object} model.UserListResponse
// @Failure 403 {object} Response
// @Router /api/auth/users [get]
func (rh *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &model.UserFilter{
		ID:    strings.TrimSpace(q.Get("id")),
		Email: q.Get("email"),
		Role:  constant.Role(strings.TrimSpace(q.Get("role"))),
	}
	if filter.Role != "" && !filter.Role.Valid() {
		writeError(w, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "role must be one of [user admin]"))
		return
	}

	res, err := rh.UserApp.ListUsers(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body model.UpdateUserRequest true "Fields to change"
// @Success 200 {object} model.UserEntity
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/auth/user/{id} [put]
func (rh *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := rh.UserApp.UpdateUser(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} Response
// @Router /api/auth/user/{id} [delete]
func (rh *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := rh.UserApp.DeleteUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
