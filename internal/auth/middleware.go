package auth

import (
	"net/http"
	"strings"
)

// Middleware rejects requests without a valid bearer token and puts the
// verified claims on the request context for handlers downstream.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r.Header.Get("Authorization"))
		if raw == "" {
			http.Error(w, "access token required", http.StatusUnauthorized)
			return
		}

		claims, err := s.VerifyToken(raw)
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func bearerToken(header string) string {
	const prefix = "Bearer "

	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}
