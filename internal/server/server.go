// Package server exposes the submission and category services as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/example/casebook/internal/ports/primary"
)

// AdminPasswordHeader carries the admin gate password on admin routes.
const AdminPasswordHeader = "X-Admin-Password"

// Server serves the public and admin API.
type Server struct {
	submissions primary.SubmissionService
	categories  primary.CategoryService
}

// New creates a new Server with injected dependencies.
func New(submissions primary.SubmissionService, categories primary.CategoryService) *Server {
	return &Server{
		submissions: submissions,
		categories:  categories,
	}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/healthz", s.health)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/use-cases", s.listUseCases)
		r.Post("/use-cases", s.submitUseCase)
		r.Get("/categories", s.listCategories)

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)

			r.Get("/submissions", s.listSubmissions)
			r.Post("/submissions/{id}/approve", s.approveSubmission)
			r.Post("/submissions/{id}/reject", s.rejectSubmission)
			r.Delete("/submissions/{id}", s.deleteSubmission)

			r.Post("/categories", s.addCategory)
			r.Delete("/categories/{name}", s.deleteCategory)
		})
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Printf("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
