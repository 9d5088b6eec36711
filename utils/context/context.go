package context

import (
	"context"

	"github.com/muhammadheryan/verified-commerce/constant"
	"github.com/muhammadheryan/verified-commerce/model"
)

func WithClaims(ctx context.Context, claims *model.Claims) context.Context {
	return context.WithValue(ctx, constant.ClaimsKey, claims)
}

func GetClaims(ctx context.Context) (*model.Claims, bool) {
	v := ctx.Value(constant.ClaimsKey)
	if v == nil {
		return nil, false
	}
	claims, ok := v.(*model.Claims)
	return claims, ok && claims != nil
}

func GetUserID(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return claims.UserID, claims.UserID != ""
}

func GetRole(ctx context.Context) (constant.Role, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return claims.Role, true
}
