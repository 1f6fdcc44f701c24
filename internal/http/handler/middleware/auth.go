package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"mylibrary/internal/core"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// tokenScheme is the expected Authorization scheme: "Token <key>".
const tokenScheme = "Token"

var ErrMissingAuthHeader error = errors.New("Authorization header is required")
var ErrInvalidAuthHeader error = errors.New("Authorization header must be of the form 'Token <key>'")

type ctxKey string

const userIDKey ctxKey = "userID"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenResolver . TokenResolver
type TokenResolver interface {
	ResolveToken(ctx context.Context, key string) (core.UserRecord, error)
}

// AuthMiddleware rejects requests that do not carry a resolvable bearer token
// before any handler logic runs.
type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	resolver TokenResolver
}

func NewAuthMiddleware(logger *zap.SugaredLogger, resolver TokenResolver) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		resolver: resolver,
	}
}

func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := chimw.GetReqID(r.Context())

		header := r.Header.Get("Authorization")
		if header == "" {
			m.unauthorized(w, ErrMissingAuthHeader.Error())
			m.logs.Errorw("missing Authorization header", "request_id", requestId)
			return
		}

		key, err := keyFromAuthHeader(header)
		if err != nil {
			m.unauthorized(w, err.Error())
			m.logs.Errorw("malformed Authorization header", "error", err, "request_id", requestId)
			return
		}

		user, err := m.resolver.ResolveToken(r.Context(), key)
		if err != nil {
			m.unauthorized(w, core.ErrTokenNotFound.Error())
			m.logs.Errorw("token resolution failed", "error", err, "request_id", requestId)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), user.ID)))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// WithUserID stores the authenticated user's id for downstream handlers.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserID returns the authenticated user's id stored by Auth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func keyFromAuthHeader(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], tokenScheme) {
		return "", ErrInvalidAuthHeader
	}

	key := strings.TrimSpace(parts[1])
	if key == "" {
		return "", ErrInvalidAuthHeader
	}

	return key, nil
}
