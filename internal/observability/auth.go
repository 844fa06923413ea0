package observability

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"arachnid/internal/spider"
)

// SpiderKey gates a route group on the S.P.I.D.E.R. clearance key. The check
// is stateless: a byte-for-byte constant-time compare of the request header
// against the configured key, with no attempt counting. A key from any other
// clearance domain is just a wrong key.
func SpiderKey(requiredKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidate := r.Header.Get(spider.KeyHeader)
			if requiredKey == "" || subtle.ConstantTimeCompare([]byte(candidate), []byte(requiredKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error":  "Missing or invalid API key. Include X-SPIDER-Key header with valid key.",
					"status": http.StatusUnauthorized,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
