package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Skipper reports whether a request may bypass authentication.
type Skipper func(r *http.Request) bool

// Middleware validates bearer tokens and attaches the claims to the request
// context. Rejections use the same {type, detail} envelope as the services.
type Middleware struct {
	cfg     Config
	skipper Skipper
}

// NewMiddleware constructs a Middleware. A nil skipper authenticates every request.
func NewMiddleware(cfg Config, skipper Skipper) Middleware {
	return Middleware{cfg: cfg, skipper: skipper}
}

// Wrap returns a handler that rejects requests without a valid token.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skipper != nil && m.skipper(r) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := bearerToken(r)
		var claims *Claims
		if err == nil {
			claims, err = Parse(token, m.cfg)
		}
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"type":   "unauthorized",
				"detail": err.Error(),
			})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// bearerToken pulls the raw token out of the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(header[len("bearer "):]), nil
}
