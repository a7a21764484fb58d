package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

// unauthorizedMsg is the single body returned for a missing, malformed,
// forged or expired token.
const unauthorizedMsg = "Token is not valid, authorization denied"

// TokenVerifier resolves a session token to a user ID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenAuth returns middleware that reads a session token from header,
// verifies it and stores the user ID in the request context. A "Bearer "
// prefix on the header value is accepted.
func TokenAuth(verifier TokenVerifier, header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(header))
			token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, unauthorizedMsg)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				slog.DebugContext(r.Context(), "token rejected", "error", err)
				writeJSONError(w, http.StatusUnauthorized, unauthorizedMsg)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
