// Package httpapi exposes the core entry points over HTTP. It is a thin
// presentation adapter: it translates requests to service calls and service
// errors to status codes, and never touches the persisted documents itself.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"markbook/internal/logging"
	"markbook/internal/server/services"
	"markbook/internal/server/session"
)

type Server struct {
	address  string
	logger   logging.Logger
	auth     *services.AuthService
	records  *services.RecordService
	sessions *session.Manager
}

func NewServer(address string, l logging.Logger, auth *services.AuthService, records *services.RecordService, sessions *session.Manager) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "httpapi"),
		auth:     auth,
		records:  records,
		sessions: sessions,
	}
}

// Router builds the chi router with the public and session-guarded routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", s.handlePing)
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Post("/logout", s.handleLogout)
			r.Put("/scores", s.handlePutScores)
			r.Get("/scores", s.handleGetScores)
		})
	})

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
