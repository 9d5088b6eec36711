package transport

import (
	"net/http"
	"strings"

	"github.com/muhammadheryan/verified-commerce/application/user"
	"github.com/muhammadheryan/verified-commerce/constant"
	utilsContext "github.com/muhammadheryan/verified-commerce/utils/context"
	"github.com/muhammadheryan/verified-commerce/utils/errors"
)

// Authenticate resolves the bearer token through UserApp and stores the
// claims on the request context.
func Authenticate(userApp user.UserApp) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			claims, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize admits callers whose role is one of roles. It must run after
// Authenticate.
func Authorize(roles ...constant.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utilsContext.GetRole(r.Context())
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}
