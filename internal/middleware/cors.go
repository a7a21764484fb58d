package middleware

import (
	"net/http"
	"strings"
)

// CORS allows browser calls from a single origin and lets it send the
// token header. Preflight requests are answered directly.
func CORS(origin, tokenHeader string) func(http.Handler) http.Handler {
	allowHeaders := strings.Join([]string{"Origin", "Content-Type", "Accept", tokenHeader}, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Origin") == origin {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", allowHeaders)
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
