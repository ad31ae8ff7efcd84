package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/skillsmatch/careermatch/internal/session"
)

// SessionCookie is the cookie the web layer uses to transport the
// opaque session token. The core packages never read it; only handlers do.
const SessionCookie = "session"

// Handler exposes HTTP endpoints for account operations
// (signup / login / logout / me).
type Handler struct {
	svc      *Service
	sessions *session.Manager
	logger   *zap.SugaredLogger
}

func NewHandler(svc *Service, sessions *session.Manager, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, sessions: sessions, logger: logger}
}

// SignupRequest request body for the signup endpoint.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid signup payload", "err", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	a, err := h.svc.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "username or email already taken"})
			return
		}
		h.logger.Warnw("signup failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "signup failed"})
		return
	}
	token, err := h.sessions.Issue(r.Context(), a.ID)
	if err != nil {
		h.logger.Warnw("session issue failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "signup failed"})
		return
	}
	setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, a)
}

// LoginRequest login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid login payload", "err", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	a, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			// one generic message for every credential failure
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		h.logger.Warnw("login failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "login failed"})
		return
	}
	token, err := h.sessions.Issue(r.Context(), a.ID)
	if err != nil {
		h.logger.Warnw("session issue failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "login failed"})
		return
	}
	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, a)
}

// Logout revokes the caller's session. Always succeeds; an invalid or
// absent token is a no-op.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	a, err := h.sessions.Resolve(r.Context(), CookieToken(r))
	if err != nil {
		h.logger.Warnw("logout resolve failed", "err", err)
	}
	if a != nil {
		if err := h.sessions.Revoke(r.Context(), a.ID); err != nil {
			h.logger.Warnw("logout revoke failed", "err", err)
		}
	}
	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the account bound to the presented session token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	a, err := h.sessions.Resolve(r.Context(), CookieToken(r))
	if err != nil {
		h.logger.Warnw("session resolve failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "session lookup failed"})
		return
	}
	if a == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in"})
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// CookieToken extracts the session token from the request cookie, empty
// when absent.
func CookieToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
