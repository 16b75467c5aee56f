package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/karthi-AI-hub/Professor-Portfolio/internal/apperror"
	"github.com/karthi-AI-hub/Professor-Portfolio/internal/auth"
)

// AuthHandler manages the single-admin session: an email/password login,
// a GitHub OAuth alternative restricted to one account, logout, and the
// "who am I" probe the admin UI calls on load.
type AuthHandler struct {
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	github    *auth.GitHubProvider

	adminEmail        string
	adminPasswordHash string
	adminGitHubLogin  string

	logger *slog.Logger
}

func NewAuthHandler(
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	github *auth.GitHubProvider,
	adminEmail, adminPasswordHash, adminGitHubLogin string,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		tokens:            tokens,
		passwords:         passwords,
		github:            github,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		adminGitHubLogin:  adminGitHubLogin,
		logger:            logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin checks the admin credentials and issues the session cookie.
//
// HTTP: POST /auth/login
//
// Email and password failures return the same message, so the response
// never reveals which half was wrong.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.ValidationFailed("body", "request body must be valid JSON"))
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		writeError(w, apperror.ValidationFailed("credentials", "email and password are required"))
		return
	}

	if email != strings.ToLower(h.adminEmail) ||
		h.passwords.Verify(h.adminPasswordHash, req.Password) != nil {
		h.logger.Warn("admin login failed", slog.String("email", email))
		writeError(w, apperror.Unauthorized("invalid email or password"))
		return
	}

	if err := h.issueSession(w, "admin:"+email); err != nil {
		h.logger.Error("login: token generation failed", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	h.logger.Info("admin logged in", slog.String("method", "password"))
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged in"})
}

// HandleLogout clears the session cookie.
//
// HTTP: POST /auth/logout
//
// POST rather than GET: logout changes state, and GET would be open to
// CSRF and browser prefetching.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// HandleMe reports the authenticated admin identity.
//
// HTTP: GET /api/admin/me
// Auth: required (RequireAuth sets the identity in context)
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	subject, ok := auth.AdminFromContext(r.Context())
	if !ok {
		// Unreachable behind RequireAuth, but be safe.
		writeError(w, apperror.Unauthorized("valid admin session required"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"admin": subject})
}

// HandleGitHubLogin redirects the browser to GitHub's authorization
// page, with a random state value in a short-lived cookie for CSRF
// verification on callback.
//
// HTTP: GET /auth/github/login
func (h *AuthHandler) HandleGitHubLogin(w http.ResponseWriter, r *http.Request) {
	state := xid.New().String()

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.github.AuthURL(state), http.StatusTemporaryRedirect)
}

// HandleGitHubCallback completes the OAuth flow. Only the configured
// admin GitHub account is accepted; any other GitHub user gets a 403.
//
// HTTP: GET /auth/github/callback?code=xxx&state=yyy
func (h *AuthHandler) HandleGitHubCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" {
		h.logger.Warn("auth callback: missing state cookie")
		http.Error(w, "invalid OAuth state", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != stateCookie.Value {
		h.logger.Warn("auth callback: state mismatch")
		http.Error(w, "invalid OAuth state", http.StatusBadRequest)
		return
	}

	// The state cookie is single-use.
	http.SetCookie(w, &http.Cookie{
		Name:   "oauth_state",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.logger.Info("auth callback: authorization denied", slog.String("error", errParam))
		http.Redirect(w, r, "/admin?auth=denied", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "missing OAuth code", http.StatusBadRequest)
		return
	}

	ghUser, err := h.github.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("auth callback: GitHub exchange failed", slog.String("error", err.Error()))
		http.Error(w, "authentication failed", http.StatusInternalServerError)
		return
	}

	if !strings.EqualFold(ghUser.Login, h.adminGitHubLogin) {
		h.logger.Warn("auth callback: non-admin GitHub account",
			slog.String("login", ghUser.Login))
		http.Error(w, "this GitHub account is not authorized", http.StatusForbidden)
		return
	}

	if err := h.issueSession(w, "github:"+ghUser.Login); err != nil {
		h.logger.Error("auth callback: token generation failed", slog.String("error", err.Error()))
		http.Error(w, "authentication failed", http.StatusInternalServerError)
		return
	}

	h.logger.Info("admin logged in", slog.String("method", "github"))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// issueSession signs a session token for subject and sets it as an
// HttpOnly cookie. Secure should be enabled when serving over HTTPS.
func (h *AuthHandler) issueSession(w http.ResponseWriter, subject string) error {
	tokenStr, err := h.tokens.Generate(subject)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    tokenStr,
		Path:     "/",
		MaxAge:   int(auth.SessionDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
