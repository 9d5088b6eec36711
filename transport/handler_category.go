package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/verified-commerce/model"
)

// CreateCategory handler
// @Summary Create category
// @Tags Categories
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Category name"
// @Param image formData file true "Category image"
// @Success 201 {object} model.CategoryEntity
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/categories [post]
func (rh *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeError(w, err)
		return
	}

	req := model.CreateCategoryRequest{Name: strings.TrimSpace(formString(r, "name"))}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := rh.CategoryApp.Create(r.Context(), &req, formFile(r, "image"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListCategories handler
// @Summary List categories
// @Tags Categories
// @Produce json
// @Param id query string false "Category id"
// @Param name query string false "Name contains (case-insensitive)"
// @Success 200 {object} model.CategoryListResponse
// @Router /api/categories [get]
func (rh *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := rh.CategoryApp.List(r.Context(), &model.CategoryFilter{
		ID:   strings.TrimSpace(q.Get("id")),
		Name: strings.TrimSpace(q.Get("name")),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateCategory handler
// @Summary Update category
// @Description Replaces the image when one is sent; the old file is removed after the update.
// @Tags Categories
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category id"
// @Param name formData string false "Category name"
// @Param image formData file false "Category image"
// @Success 200 {object} model.CategoryEntity
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/categories/{id} [put]
func (rh *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeError(w, err)
		return
	}

	req := model.UpdateCategoryRequest{Name: trimmed(formValue(r, "name"))}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := rh.CategoryApp.Update(r.Context(), mux.Vars(r)["id"], &req, formFile(r, "image"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteCategory handler
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category id"
// @Success 200 {object} model.CategoryEntity
// @Failure 404 {object} Response
// @Router /api/categories/{id} [delete]
func (rh *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	res, err := rh.CategoryApp.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
