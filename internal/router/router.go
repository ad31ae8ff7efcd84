package router

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/skillsmatch/careermatch/internal/account"
	accountrepo "github.com/skillsmatch/careermatch/internal/account/repo"
	"github.com/skillsmatch/careermatch/internal/catalog"
	"github.com/skillsmatch/careermatch/internal/match"
	"github.com/skillsmatch/careermatch/internal/profile"
	profilerepo "github.com/skillsmatch/careermatch/internal/profile/repo"
	"github.com/skillsmatch/careermatch/internal/quiz"
	"github.com/skillsmatch/careermatch/internal/session"
	"github.com/skillsmatch/careermatch/pkg/utilities"
)

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if lrw.status == 0 {
		lrw.status = http.StatusOK
	}
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// LoggingMiddleware returns a middleware that stamps each request with
// a snowflake ID and logs it at debug level.
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := utilities.NewRequestID()
			w.Header().Set("X-Request-Id", reqID)
			lrw := &loggingResponseWriter{ResponseWriter: w}
			next.ServeHTTP(lrw, r)
			dur := time.Since(start)
			status := lrw.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debugw("http request",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(dur.Microseconds())/1000.0,
				"size", lrw.size,
			)
		})
	}
}

// SecurityHeadersMiddleware returns a middleware that sets common HTTP security headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")
			w.Header().Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			if w.Header().Get("Content-Security-Policy") == "" {
				w.Header().Set("Content-Security-Policy", "default-src 'self'; object-src 'none'; base-uri 'self';")
			}
			if r.TLS != nil {
				w.Header().Set("Strict-Transport-Security", "max-age=2592000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RegisterRoutes wires repositories, services, and handlers over the
// shared DB and catalog, and mounts them on a stdlib ServeMux.
func RegisterRoutes(logger *zap.SugaredLogger, db *sqlx.DB, cat *catalog.Catalog) http.Handler {
	accountRepo := accountrepo.NewAccountRepo(db)
	profileRepo := profilerepo.NewProfileRepo(db)

	accountSvc := account.NewService(accountRepo, nil)
	sessionMgr := session.NewManager(accountRepo)
	profileSvc := profile.NewService(profileRepo)
	engine := match.NewEngine(cat, match.DefaultComboRules())

	accountHandler := account.NewHandler(accountSvc, sessionMgr, logger)
	profileHandler := profile.NewHandler(profileSvc, accountSvc, sessionMgr, logger)
	quizHandler := quiz.NewHandler(accountSvc, sessionMgr, logger)
	matchHandler := match.NewHandler(engine, sessionMgr, profileSvc, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /careermatch-api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /careermatch-api/signup", accountHandler.Signup)
	mux.HandleFunc("POST /careermatch-api/login", accountHandler.Login)
	mux.HandleFunc("POST /careermatch-api/logout", accountHandler.Logout)
	mux.HandleFunc("GET /careermatch-api/me", accountHandler.Me)
	mux.HandleFunc("POST /careermatch-api/profile", profileHandler.Save)
	mux.HandleFunc("POST /careermatch-api/quiz", quizHandler.Submit)
	mux.HandleFunc("GET /careermatch-api/matches", matchHandler.Matches)

	// wrap with security headers middleware then logging middleware
	return LoggingMiddleware(logger)(SecurityHeadersMiddleware()(mux))
}
