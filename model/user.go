package model

import (
	"time"

	"github.com/muhammadheryan/verified-commerce/constant"
)

// UserEntity represents the users collection/table entity
type UserEntity struct {
	ID           string        `bson:"_id" db:"id" json:"id"`
	Email        string        `bson:"email" db:"email" json:"email"`
	PasswordHash string        `bson:"password_hash" db:"password_hash" json:"-"`
	FirstName    string        `bson:"first_name" db:"first_name" json:"firstName"`
	LastName     string        `bson:"last_name" db:"last_name" json:"lastName"`
	Phone        string        `bson:"phone,omitempty" db:"phone" json:"phone,omitempty"`
	Role         constant.Role `bson:"role" db:"role" json:"role"`
	CreatedAt    time.Time     `bson:"created_at" db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time    `bson:"updated_at,omitempty" db:"updated_at" json:"updatedAt,omitempty"`
}

// UserFilter for querying users. Zero fields are ignored.
type UserFilter struct {
	ID    string
	Email string
	Role  constant.Role
	IDs   []string
}

// UserSummary is the public projection embedded in other resources
type UserSummary struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Role      constant.Role `json:"role,omitempty"`
}

func NewUserSummary(u *UserEntity) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// SignupRequest for user registration
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
}

type SignupResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Role  constant.Role `json:"role"`
	User  *UserSummary  `json:"user"`
}

// UpdateUserRequest is a partial update issued by an admin; nil fields are kept.
type UpdateUserRequest struct {
	Email     *string        `json:"email" validate:"omitempty,email"`
	Password  *string        `json:"password" validate:"omitempty,min=6"`
	FirstName *string        `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string        `json:"lastName" validate:"omitempty,min=1"`
	Phone     *string        `json:"phone" validate:"omitempty,phone"`
	Role      *constant.Role `json:"role" validate:"omitempty,oneof=user admin"`
}

type UserListResponse struct {
	Count int          `json:"count"`
	Users []UserEntity `json:"users"`
}
