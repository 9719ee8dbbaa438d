package chi

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"
)

const (
	bearerPrefix = "Bearer "
	authRealm    = `Bearer realm="scriptdex"`
)

// Probes stay reachable without a key.
var publicRoutes = map[string]struct{}{
	RouteHealth:  {},
	RouteMetrics: {},
}

// BearerAuthMiddleware guards the corpus routes with static API keys.
// Empty keys are ignored; with no keys left the middleware is a pass-through.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	var digests [][sha256.Size]byte
	for _, k := range apiKeys {
		if k != "" {
			digests = append(digests, sha256.Sum256([]byte(k)))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(digests) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicRoutes[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			switch {
			case r.Header.Get("Authorization") == "":
				unauthorized(w, authRealm, "missing authorization header")
			case !ok:
				unauthorized(w, authRealm, "authorization header must use Bearer scheme")
			case !knownKey(digests, token):
				unauthorized(w, authRealm+`, error="invalid_token"`, "invalid api key")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// knownKey compares digests in constant time and checks every key.
func knownKey(digests [][sha256.Size]byte, token string) bool {
	d := sha256.Sum256([]byte(token))
	found := 0
	for i := range digests {
		found |= subtle.ConstantTimeCompare(d[:], digests[i][:])
	}
	return found == 1
}

func unauthorized(w http.ResponseWriter, challenge, message string) {
	w.Header().Set("WWW-Authenticate", challenge)
	writeError(w, http.StatusUnauthorized, ErrorResponseCodeUnauthorized, message)
}
