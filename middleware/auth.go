package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dcode-github/nestora/backend/controllers"
	"github.com/dcode-github/nestora/backend/utils"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenHeader := r.Header.Get("Authorization")
		if tokenHeader == "" {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing Authorization header", nil)
			return
		}

		tokenParts := strings.Split(tokenHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid Authorization header format", nil)
			return
		}

		claims, err := utils.ValidateJWT(tokenParts[1])
		if errors.Is(err, utils.ErrTokenExpired) {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token has expired", nil, err)
			return
		}
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, err)
			return
		}

		ctx := context.WithValue(r.Context(), controllers.ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
