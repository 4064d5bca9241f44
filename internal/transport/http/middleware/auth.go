package middleware

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedran77/devconnect/internal/service"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Auth guards protected routes. The token travels in the x-auth-token
// header; a missing or invalid one short-circuits with 401 before the
// handler runs. Every request re-verifies, nothing is cached.
func Auth(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get("x-auth-token")
			if tokenStr == "" {
				writeUnauthorized(w, "No token, authorization denied")
				return
			}

			id, err := tokens.Verify(tokenStr)
			if err != nil {
				writeUnauthorized(w, "Token is not valid")
				return
			}

			userID, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				writeUnauthorized(w, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user id from request context
func GetUserID(ctx context.Context) primitive.ObjectID {
	return ctx.Value(UserIDKey).(primitive.ObjectID)
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"msg":"` + msg + `"}`))
}
