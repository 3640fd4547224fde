// Package httpapi exposes the ledger over a REST API: registration, session
// creation, and the authenticated statement endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/finledger/internal/logging"
	"github.com/dmitrijs2005/finledger/internal/server/services"
)

type HTTPServer struct {
	address    string
	users      *services.UserService
	statements *services.StatementService
	logger     logging.Logger
	jwtSecret  []byte
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, ss *services.StatementService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:    a,
		logger:     l.With("module", "http_server"),
		users:      us,
		statements: ss,
		jwtSecret:  []byte(secretKey),
	}, nil
}

// Router assembles the chi router: the public registration and session
// endpoints, and the statement endpoints behind the access-token middleware.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", s.handleRegister)
		r.Post("/sessions", s.handleAuthenticate)

		r.Group(func(r chi.Router) {
			r.Use(s.accessTokenMiddleware)
			r.Get("/profile", s.handleProfile)
			r.Post("/statements/deposit", s.handleDeposit)
			r.Post("/statements/withdraw", s.handleWithdraw)
			r.Get("/statements/balance", s.handleBalance)
			r.Get("/statements/{statementID}", s.handleGetStatement)
		})
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
