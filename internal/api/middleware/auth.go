package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avoronov/notes-api/internal/domain"
	"github.com/avoronov/notes-api/internal/service"
	"github.com/rs/zerolog"
)

type contextKey string

const userKey contextKey = "currentUser"

// Auth gates a route group behind a bearer token. The response is the same
// generic 401 whether the header is missing, the token is invalid or
// expired, or the subject no longer exists; the reason only goes to logs.
func Auth(authService *service.AuthService, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Debug().Str("path", r.URL.Path).Msg("missing or malformed authorization header")
				unauthorized(w)
				return
			}

			user, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				logger.Debug().Err(err).Str("path", r.URL.Path).Msg("rejected bearer token")
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser returns the authenticated user injected by Auth.
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, "Invalid authentication credentials", http.StatusUnauthorized)
}
