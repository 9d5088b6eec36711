package model

import (
	"time"

	"github.com/muhammadheryan/verified-commerce/constant"
)

// Claims is the identity resolved from a bearer token.
type Claims struct {
	UserID    string
	Role      constant.Role
	TokenID   string
	ExpiresAt time.Time
}
