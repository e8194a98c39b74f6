package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fintrack-server/src/apperr"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

type contextKey struct{}

var userKey contextKey

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func JWTAuthMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				util.WriteDetail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if errors.Is(err, apperr.ErrUnauthenticated) {
				slog.Debug("Rejected token", "path", r.URL.Path, "error", err)
				util.WriteDetail(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			if err != nil {
				slog.Error("Failed to resolve identity", "path", r.URL.Path, "error", err)
				util.WriteDetail(w, http.StatusInternalServerError, "internal error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the user set by JWTAuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}
