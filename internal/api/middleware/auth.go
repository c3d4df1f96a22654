package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type contextKey string

// UserIDKey is the context key carrying the authenticated user id
const UserIDKey contextKey = "userID"

// HeaderUserID is set by the API gateway after it has verified the caller
const HeaderUserID = "X-User-ID"

// Auth requires the X-User-ID header and stores its value in the request
// context. Requests without it get a 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID extracts the authenticated user id from the context
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}
