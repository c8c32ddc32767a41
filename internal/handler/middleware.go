package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shravani12148/Goal--Based-Diversification-System/internal/logger"
	"github.com/shravani12148/Goal--Based-Diversification-System/internal/service"
)

type contextKey string

// userIDKey is the context key carrying the authenticated user's ID.
const userIDKey contextKey = "userID"

// AuthMiddleware validates the Bearer token and stores the user ID in the
// request context. Requests without a valid token get a 401.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			respondError(w, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		userID, err := service.ValidateToken(tokenString)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = logger.WithUserID(ctx, userID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user's ID from the context, or
// uuid.Nil when the request was not authenticated.
func GetUserID(ctx context.Context) uuid.UUID {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

// WithUserID returns a context carrying the given user ID. Test helper.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
