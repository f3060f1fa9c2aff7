package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"learnhub/backend/app/dto"
	jwtutil "learnhub/backend/app/jwt"
	"learnhub/backend/app/models"
	"learnhub/backend/app/services"
)

type ctxKey int

const userKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Users  *services.UserService
}

// RequireAuth gates a handler behind a valid bearer token. The token subject
// is resolved back to a user record so handlers always see a live user, even
// if the account was deleted after the token was issued.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, "token missing")
			return
		}
		claims, err := a.Signer.Parse(jwtutil.ExtractBearer(header))
		if err != nil {
			switch {
			case errors.Is(err, jwtutil.ErrTokenExpired):
				unauthorized(w, "token expired")
			default:
				unauthorized(w, "invalid token")
			}
			return
		}
		user, err := a.Users.FindByUsername(claims.Username)
		if err != nil {
			unauthorized(w, "user not found")
			return
		}
		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Success: false, Message: msg})
}

// CurrentUser returns the user bound by RequireAuth, or nil outside a gated
// handler.
func CurrentUser(ctx context.Context) *models.User {
	if v := ctx.Value(userKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
