package auth

import (
	"crypto/hmac"
	"net/http"
)

// Header carrying the shared secret on server-to-server calls. Header
// lookup is case-insensitive via net/http canonicalization.
const Header = "x-api-key"

// APIKey guards a route group with a shared secret. An empty configured
// secret is a server fault, not a client one; a missing or wrong header is
// forbidden. The response never says which.
func APIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				http.Error(w, `{"error":"server not configured"}`, http.StatusInternalServerError)
				return
			}
			provided := r.Header.Get(Header)
			if provided == "" || !hmac.Equal([]byte(provided), []byte(secret)) {
				http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
