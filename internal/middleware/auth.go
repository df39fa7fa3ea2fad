package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/inkwell/inkwell-api/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller derived from a verified bearer token.
type Identity struct {
	UserID string
}

// RequireAuth validates the Authorization bearer token and injects the
// caller's Identity into the request context.
func RequireAuth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "no token, authorization denied")
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "no token, authorization denied")
				return
			}

			userID, err := auth.ParseToken(token, secret)
			if err != nil {
				writeJSONMessage(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, Identity{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

func writeJSONMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
