package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is a list of strings stored as a JSON array in SQL columns and as
// a native array in documents.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("StringList: unsupported type %T", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

type ProductEntity struct {
	ID          string     `bson:"_id" db:"id" json:"id"`
	Name        string     `bson:"name" db:"name" json:"name"`
	Description string     `bson:"description" db:"description" json:"description"`
	Price       float64    `bson:"price" db:"price" json:"price"`
	Model       string     `bson:"model" db:"model" json:"model"`
	ImageCover  string     `bson:"image_cover" db:"image_cover" json:"imageCover"`
	Images      StringList `bson:"images" db:"images" json:"images"`
	Stock       int64      `bson:"stock" db:"stock" json:"stock"`
	CategoryID  string     `bson:"category" db:"category_id" json:"categoryId"`
	CreatedAt   time.Time  `bson:"created_at" db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `bson:"updated_at,omitempty" db:"updated_at" json:"updatedAt,omitempty"`
}

// Keys returns every file key owned by the product, cover first.
func (p *ProductEntity) Keys() []string {
	keys := make([]string, 0, len(p.Images)+1)
	if p.ImageCover != "" {
		keys = append(keys, p.ImageCover)
	}
	return append(keys, p.Images...)
}

// ProductFilter: Name and Model are case-insensitive substrings, the rest exact.
type ProductFilter struct {
	ID         string
	Name       string
	Model      string
	CategoryID string
	IDs        []string
}

type CreateProductRequest struct {
	Name        string  `form:"name" validate:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" validate:"required,gt=0"`
	Model       string  `form:"model"`
	Stock       int64   `form:"stock" validate:"gte=0"`
	CategoryID  string  `form:"category" validate:"required"`
}

type UpdateProductRequest struct {
	Name        *string  `form:"name" validate:"omitempty,min=1"`
	Description *string  `form:"description"`
	Price       *float64 `form:"price" validate:"omitempty,gt=0"`
	Model       *string  `form:"model"`
	Stock       *int64   `form:"stock" validate:"omitempty,gte=0"`
	CategoryID  *string  `form:"category" validate:"omitempty,min=1"`
}

// ProductResponse is a product with its category resolved.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Model       string          `json:"model"`
	ImageCover  string          `json:"imageCover"`
	Images      []string        `json:"images"`
	Stock       int64           `json:"stock"`
	Category    *CategoryEntity `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

func NewProductResponse(p *ProductEntity, category *CategoryEntity) *ProductResponse {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Model:       p.Model,
		ImageCover:  p.ImageCover,
		Images:      images,
		Stock:       p.Stock,
		Category:    category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ProductListResponse struct {
	Count    int               `json:"count"`
	Products []ProductResponse `json:"products"`
}
