package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/verified-commerce/model"
)

// CreateProduct handler
// @Summary Create product
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Product name"
// @Param description formData string false "Description"
// @Param price formData number true "Price"
// @Param model formData string false "Model"
// @Param stock formData integer false "Stock"
// @Param category formData string true "Category id"
// @Param imageCover formData file true "Cover image"
// @Param images formData file false "Gallery images"
// @Success 201 {object} model.ProductResponse
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /api/products [post]
func (rh *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeError(w, err)
		return
	}

	price, err := formFloat(r, "price")
	if err != nil {
		writeError(w, err)
		return
	}
	stock, err := formInt(r, "stock")
	if err != nil {
		writeError(w, err)
		return
	}

	req := model.CreateProductRequest{
		Name:        strings.TrimSpace(formString(r, "name")),
		Description: formString(r, "description"),
		Model:       strings.TrimSpace(formString(r, "model")),
		CategoryID:  strings.TrimSpace(formString(r, "category")),
	}
	if price != nil {
		req.Price = *price
	}
	if stock != nil {
		req.Stock = *stock
	}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := rh.ProductApp.Create(r.Context(), &req, formFile(r, "imageCover"), formFiles(r, "images"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Param id query string false "Product id"
// @Param name query string false "Name contains (case-insensitive)"
// @Param model query string false "Model contains (case-insensitive)"
// @Param category query string false "Category id"
// @Success 200 {object} model.ProductListResponse
// @Router /api/products [get]
func (rh *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := rh.ProductApp.List(r.Context(), &model.ProductFilter{
		ID:         strings.TrimSpace(q.Get("id")),
		Name:       strings.TrimSpace(q.Get("name")),
		Model:      strings.TrimSpace(q.Get("model")),
		CategoryID: strings.TrimSpace(q.Get("category")),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Description A sent imageCover replaces the cover; sent images replace the whole gallery.
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Param name formData string false "Product name"
// @Param description formData string false "Description"
// @Param price formData number false "Price"
// @Param model formData string false "Model"
// @Param stock formData integer false "Stock"
// @Param category formData string false "Category id"
// @Param imageCover formData file false "Cover image"
// @Param images formData file false "Gallery images"
// @Success 200 {object} model.ProductResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/products/{id} [put]
func (rh *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeError(w, err)
		return
	}

	price, err := formFloat(r, "price")
	if err != nil {
		writeError(w, err)
		return
	}
	stock, err := formInt(r, "stock")
	if err != nil {
		writeError(w, err)
		return
	}

	req := model.UpdateProductRequest{
		Name:        trimmed(formValue(r, "name")),
		Description: formValue(r, "description"),
		Price:       price,
		Model:       trimmed(formValue(r, "model")),
		Stock:       stock,
		CategoryID:  trimmed(formValue(r, "category")),
	}
	if err := validate(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := rh.ProductApp.Update(r.Context(), mux.Vars(r)["id"], &req, formFile(r, "imageCover"), formFiles(r, "images"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product id"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} Response
// @Router /api/products/{id} [delete]
func (rh *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	res, err := rh.ProductApp.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
