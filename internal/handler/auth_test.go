package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/auth"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/handler"
)

const (
	testAdminEmail    = "prof@example.com"
	testAdminPassword = "correct horse battery staple"
)

// newAuthRouter wires the auth handler plus a RequireAuth-protected
// probe route, mirroring the real route table.
func newAuthRouter(t *testing.T) *chi.Mux {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars!!")
	require.NoError(t, err)
	passwords := auth.NewPasswordServiceForTest(bcrypt.MinCost)

	hash, err := passwords.Hash(testAdminPassword)
	require.NoError(t, err)

	h := handler.NewAuthHandler(
		tokens,
		passwords,
		auth.NewGitHubProvider("id", "secret", "http://localhost/auth/github/callback"),
		testAdminEmail,
		hash,
		"karthi-AI-hub",
		logger,
	)

	r := chi.NewRouter()
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/logout", h.HandleLogout)
	r.Get("/auth/github/login", h.HandleGitHubLogin)
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))
		r.Get("/me", h.HandleMe)
	})
	return r
}

func login(t *testing.T, r *chi.Mux, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestHandleLogin(t *testing.T) {
	t.Run("valid credentials issue an HttpOnly session cookie", func(t *testing.T) {
		r := newAuthRouter(t)

		rr := login(t, r, testAdminEmail, testAdminPassword)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		cookie := sessionCookie(t, rr)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	})

	t.Run("email comparison is case-insensitive", func(t *testing.T) {
		r := newAuthRouter(t)

		rr := login(t, r, "PROF@example.COM", testAdminPassword)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		r := newAuthRouter(t)

		rr := login(t, r, testAdminEmail, "a-guess")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong email gets the same message as wrong password", func(t *testing.T) {
		r := newAuthRouter(t)

		badEmail := login(t, r, "intruder@example.com", testAdminPassword)
		badPassword := login(t, r, testAdminEmail, "a-guess")

		assert.Equal(t, http.StatusUnauthorized, badEmail.Code)
		assert.JSONEq(t, badPassword.Body.String(), badEmail.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		r := newAuthRouter(t)

		rr := login(t, r, "", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleMe(t *testing.T) {
	t.Run("with a session", func(t *testing.T) {
		r := newAuthRouter(t)
		cookie := sessionCookie(t, login(t, r, testAdminEmail, testAdminPassword))

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "admin:"+testAdminEmail, body["admin"])
	})

	t.Run("without a session", func(t *testing.T) {
		r := newAuthRouter(t)

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("with a garbage token", func(t *testing.T) {
		r := newAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "not-a-jwt"})
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestHandleLogout(t *testing.T) {
	r := newAuthRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	cookie := sessionCookie(t, rr)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestHandleGitHubLogin(t *testing.T) {
	r := newAuthRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/github/login", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rr.Code)

	location := rr.Header().Get("Location")
	assert.Contains(t, location, "github.com/login/oauth/authorize")
	assert.Contains(t, location, "state=")

	var stateCookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == "oauth_state" {
			stateCookie = c
		}
	}
	require.NotNil(t, stateCookie, "state cookie must be set before the redirect")
	assert.Contains(t, location, stateCookie.Value)
}
