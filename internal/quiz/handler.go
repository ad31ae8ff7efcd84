package quiz

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/skillsmatch/careermatch/internal/account"
	"github.com/skillsmatch/careermatch/internal/account/entity"
	"github.com/skillsmatch/careermatch/internal/session"
)

// Handler scores quiz submissions and, for logged-in callers, saves the
// derived personality label on their profile.
type Handler struct {
	accounts *account.Service
	sessions *session.Manager
	logger   *zap.SugaredLogger
}

func NewHandler(accounts *account.Service, sessions *session.Manager, logger *zap.SugaredLogger) *Handler {
	return &Handler{accounts: accounts, sessions: sessions, logger: logger}
}

// SubmitRequest carries the Likert answers keyed by trait name.
type SubmitRequest struct {
	Answers map[string]int `json:"answers"`
}

// SubmitResponse reports the derived label.
type SubmitResponse struct {
	PersonalityType PersonalityType `json:"personality_type"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("invalid quiz payload", "err", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	personality := Score(req.Answers)

	caller, err := h.sessions.Resolve(r.Context(), account.CookieToken(r))
	if err != nil {
		h.logger.Warnw("session resolve failed", "err", err)
	}
	if caller != nil {
		label := string(personality)
		if _, err := h.accounts.SaveProfile(r.Context(), caller.ID, entity.ProfileUpdate{PersonalityType: &label}); err != nil {
			h.logger.Warnw("personality save failed", "err", err, "account_id", caller.ID)
		}
	}

	writeJSON(w, http.StatusOK, SubmitResponse{PersonalityType: personality})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
