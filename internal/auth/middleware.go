package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

var ErrMissingKey = errors.New("missing or malformed hypixel api key")

type apiKeyContextKey struct{}

// RejectFunc writes the response for a request without a usable key.
type RejectFunc func(w http.ResponseWriter, r *http.Request, err error)

// Middleware requires a Hypixel API key on every request. The key is only
// checked for shape here; Hypixel decides whether it is valid.
type Middleware struct {
	reject RejectFunc
}

func NewMiddleware(reject RejectFunc) Middleware {
	if reject == nil {
		reject = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	return Middleware{reject: reject}
}

func (m Middleware) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := KeyFromRequest(r)
		if !ok {
			m.reject(w, r, ErrMissingKey)
			return
		}

		ctx := context.WithValue(r.Context(), apiKeyContextKey{}, key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// KeyFromRequest looks for the key in the Authorization header first and
// the "key" query parameter second. A "Bearer " prefix on the header is
// accepted.
func KeyFromRequest(r *http.Request) (string, bool) {
	if authz := strings.TrimSpace(r.Header.Get("Authorization")); authz != "" {
		authz = strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		if isKey(authz) {
			return authz, true
		}
	}
	if key := r.URL.Query().Get("key"); isKey(key) {
		return key, true
	}
	return "", false
}

func APIKeyFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(apiKeyContextKey{})
	key, ok := v.(string)
	return key, ok
}

func isKey(v string) bool {
	if len(v) != 36 {
		return false
	}
	_, err := uuid.Parse(v)
	return err == nil
}
