package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const cartTokenHeader = "X-Cart-Token"

// CartToken resolves the session cart identifier. Clients that have one send
// it back in the header; anyone else gets a fresh token minted and echoed so
// the cart survives across anonymous requests.
func CartToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(cartTokenHeader))
			if _, err := uuid.Parse(token); err != nil {
				token = uuid.NewString()
			}

			w.Header().Set(cartTokenHeader, token)
			next.ServeHTTP(w, r.WithContext(WithCartID(r.Context(), token)))
		})
	}
}
