package profile

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/skillsmatch/careermatch/internal/account"
	acctentity "github.com/skillsmatch/careermatch/internal/account/entity"
	"github.com/skillsmatch/careermatch/internal/session"
)

// Handler accepts self-assessment submissions. A logged-in caller's
// submission updates their account profile; a guest submission lands in
// the standalone profiles table.
type Handler struct {
	svc      *Service
	accounts *account.Service
	sessions *session.Manager
	logger   *zap.SugaredLogger
}

func NewHandler(svc *Service, accounts *account.Service, sessions *session.Manager, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, accounts: accounts, sessions: sessions, logger: logger}
}

// SaveRequest is the profile submission payload. Pointer fields are
// optional: absent fields leave stored values untouched for accounts.
type SaveRequest struct {
	Name            string  `json:"name"`
	Skills          string  `json:"skills"`
	Bio             *string `json:"bio,omitempty"`
	FavoriteSubject *string `json:"favorite_subject,omitempty"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid profile payload", "err", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	caller, err := h.sessions.Resolve(r.Context(), account.CookieToken(r))
	if err != nil {
		h.logger.Warnw("session resolve failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "profile save failed"})
		return
	}

	if caller != nil {
		update := acctentity.ProfileUpdate{
			Name:            &req.Name,
			Skills:          &req.Skills,
			Bio:             req.Bio,
			FavoriteSubject: req.FavoriteSubject,
		}
		a, err := h.accounts.SaveProfile(r.Context(), caller.ID, update)
		if err != nil {
			h.logger.Warnw("account profile update failed", "err", err, "account_id", caller.ID)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "profile save failed"})
			return
		}
		writeJSON(w, http.StatusOK, a)
		return
	}

	bio := ""
	if req.Bio != nil {
		bio = *req.Bio
	}
	p, err := h.svc.Save(r.Context(), req.Name, req.Skills, bio, "")
	if err != nil {
		h.logger.Warnw("guest profile save failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "profile save failed"})
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
