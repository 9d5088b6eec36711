package model

import "time"

type CategoryEntity struct {
	ID        string     `bson:"_id" db:"id" json:"id"`
	Name      string     `bson:"name" db:"name" json:"name"`
	Image     string     `bson:"image" db:"image" json:"image"`
	CreatedAt time.Time  `bson:"created_at" db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" db:"updated_at" json:"updatedAt,omitempty"`
}

// CategoryFilter: ID exact, Name case-insensitive substring, IDs set membership.
type CategoryFilter struct {
	ID   string
	Name string
	IDs  []string
}

type CreateCategoryRequest struct {
	Name string `form:"name" validate:"required"`
}

type UpdateCategoryRequest struct {
	Name *string `form:"name" validate:"omitempty,min=1"`
}

type CategoryListResponse struct {
	Count      int              `json:"count"`
	Categories []CategoryEntity `json:"categories"`
}
