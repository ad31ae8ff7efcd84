package match

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/skillsmatch/careermatch/internal/account"
	"github.com/skillsmatch/careermatch/internal/profile"
	"github.com/skillsmatch/careermatch/internal/quiz"
	"github.com/skillsmatch/careermatch/internal/session"
)

// maxResults caps the ranked list handed back to the client. The engine
// itself never truncates; the top-N view is this handler's concern.
const maxResults = 12

// Handler serves ranked career matches. Skills come from the session's
// account when present, else from the most recent guest profile.
type Handler struct {
	engine   *Engine
	sessions *session.Manager
	profiles *profile.Service
	logger   *zap.SugaredLogger
}

func NewHandler(engine *Engine, sessions *session.Manager, profiles *profile.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{engine: engine, sessions: sessions, profiles: profiles, logger: logger}
}

// MatchesResponse is the ranked, possibly filtered result list.
type MatchesResponse struct {
	PersonalityType quiz.PersonalityType `json:"personality_type"`
	Matches         []Result             `json:"matches"`
}

func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skills := ""
	stored := ""
	caller, err := h.sessions.Resolve(ctx, account.CookieToken(r))
	if err != nil {
		h.logger.Warnw("session resolve failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "match lookup failed"})
		return
	}
	if caller != nil {
		if caller.Skills != nil {
			skills = *caller.Skills
		}
		if caller.PersonalityType != nil {
			stored = *caller.PersonalityType
		}
	} else {
		p, err := h.profiles.Latest(ctx)
		if err != nil {
			h.logger.Warnw("guest profile lookup failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "match lookup failed"})
			return
		}
		if p != nil {
			skills = p.Skills
			stored = p.PersonalityType
		}
	}

	personality := quiz.PersonalityType(r.URL.Query().Get("personality_type"))
	if personality == "" {
		personality = quiz.PersonalityType(stored)
	}
	if personality == "" {
		personality = quiz.TypeBalanced
	}

	results := h.engine.Search(skills, personality, r.URL.Query().Get("q"))
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	writeJSON(w, http.StatusOK, MatchesResponse{PersonalityType: personality, Matches: results})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
