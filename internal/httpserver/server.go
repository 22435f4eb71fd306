// internal/httpserver/server.go
//
// HTTP server wiring for the browser front end.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/" (embedded page), "/static/*", "/health", "/metrics".
//   - Session endpoints: GET /session, POST /session/{input,length,submit,undo},
//     POST /session/click/{index}. Each POST is one controller intent; the
//     response is the view model after the intent (and its lookup) settled.
//
// Notes:
//   - Every browser gets its own controller, found through a signed session
//     cookie. Sessions live in memory only.
//   - Errors are JSON bodies of the form {"error": "..."}.

package httpserver

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robalobadob/sylver/apps/go-viz/assets"
	"github.com/robalobadob/sylver/apps/go-viz/internal/controller"
	"github.com/robalobadob/sylver/apps/go-viz/internal/store"
)

// Options tunes the server.
type Options struct {
	JWTSecret      string
	ClientOrigin   string
	SessionTTL     time.Duration
	RequestTimeout time.Duration
	SecureCookies  bool
}

// Server bundles router, session store and the controller factory.
type Server struct {
	r             *chi.Mux
	store         store.Store
	newController func() *controller.Controller
	opts          Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, newController func() *controller.Controller, opts Options) *Server {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	s := &Server{r: chi.NewRouter(), store: st, newController: newController, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(opts.RequestTimeout))
	s.r.Use(s.cors)

	// --- page + assets ---
	static, _ := fs.Sub(assets.FS, "static")
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(assets.Index())
	})
	s.r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	s.r.Handle("/metrics", promhttp.Handler())

	// --- JSON API ---
	s.r.Group(func(r chi.Router) {
		r.Use(jsonContentType)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		r.Route("/session", func(r chi.Router) {
			r.Use(s.withSession)
			r.Get("/", s.handleView)
			r.Post("/input", s.handleInput)
			r.Post("/length", s.handleLength)
			r.Post("/submit", s.intent(func(*http.Request) any { return controller.SubmitInput{} }))
			r.Post("/undo", s.intent(func(*http.Request) any { return controller.Undo{} }))
			r.Post("/click/{index}", s.handleClick)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
		})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Handler returns the root handler for an http.Server.
func (s *Server) Handler() http.Handler { return s.r }

// SweepSessions drops idle sessions until ctx is done.
func (s *Server) SweepSessions(ctx context.Context, every time.Duration) error {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			s.store.Sweep(s.opts.SessionTTL)
		}
	}
}

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin != "" {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ helpers ------------------------------------

func writeView(w http.ResponseWriter, snap controller.Snapshot) {
	_ = json.NewEncoder(w).Encode(newViewModel(snap))
}
