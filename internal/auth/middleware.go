package auth

import (
	"context"
	"net/http"
)

// contextKey is unexported so only this package can read or write the
// admin identity in a request context.
type contextKey string

const adminKey contextKey = "admin"

// CookieName is the session cookie holding the signed JWT.
const CookieName = "token"

// RequireAuth enforces an authenticated admin session on protected
// routes. It reads the JWT from the HttpOnly session cookie, validates
// it, and stores the admin identity in the request context. Missing or
// invalid tokens end the request with 401.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := extractSubject(r, tokens)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized","message":"valid admin session required"}`))
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext returns the authenticated admin identity, or
// ("", false) when the request carries no valid session.
func AdminFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminKey).(string)
	return id, ok && id != ""
}

func extractSubject(r *http.Request, tokens *TokenService) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	return tokens.Validate(cookie.Value)
}
