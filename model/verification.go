package model

import "time"

// VerificationEntity asserts that a user verified a product. Records are
// append-only.
type VerificationEntity struct {
	ID         string    `bson:"_id" db:"id" json:"id"`
	UserID     string    `bson:"user_id" db:"user_id" json:"userId"`
	ProductID  string    `bson:"product_id" db:"product_id" json:"productId"`
	Phone      string    `bson:"phone,omitempty" db:"phone" json:"phone,omitempty"`
	Image      string    `bson:"image,omitempty" db:"image" json:"image,omitempty"`
	VerifiedAt time.Time `bson:"verified_at" db:"verified_at" json:"verifiedAt"`
	CreatedAt  time.Time `bson:"created_at" db:"created_at" json:"createdAt"`
}

type VerificationFilter struct {
	UserID    string
	ProductID string
	Phone     string
}

type CreateVerificationRequest struct {
	ProductID string `json:"productId" form:"productId" validate:"required"`
}

type VerificationResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	User       *UserSummary   `json:"user,omitempty"`
	ProductID  string         `json:"productId"`
	Product    *ProductEntity `json:"product,omitempty"`
	Phone      string         `json:"phone,omitempty"`
	Image      string         `json:"image,omitempty"`
	VerifiedAt time.Time      `json:"verifiedAt"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func NewVerificationResponse(v *VerificationEntity, user *UserSummary, product *ProductEntity) *VerificationResponse {
	return &VerificationResponse{
		ID:         v.ID,
		UserID:     v.UserID,
		User:       user,
		ProductID:  v.ProductID,
		Product:    product,
		Phone:      v.Phone,
		Image:      v.Image,
		VerifiedAt: v.VerifiedAt,
		CreatedAt:  v.CreatedAt,
	}
}

type VerificationListResponse struct {
	Count         int                    `json:"count"`
	Verifications []VerificationResponse `json:"verifications"`
}
