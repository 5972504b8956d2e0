package server

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/core/submission"
	"github.com/example/casebook/internal/ports/primary"
	"github.com/example/casebook/internal/version"
)

type submitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UseCase     string `json:"useCase"`
	SubmittedBy string `json:"submittedBy"`
}

type approveRequest struct {
	Category string `json:"category"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

type categoryDeleted struct {
	Name    string `json:"name"`
	Deleted int    `json:"deleted"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.String()})
}

// listUseCases returns the public browse list: approved submissions only.
func (s *Server) listUseCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := s.submissions.ListSubmissions(r.Context(), primary.SubmissionFilters{
		Status:     string(submission.StatusApproved),
		SearchTerm: q.Get("search"),
		Category:   q.Get("category"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) submitUseCase(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.submissions.SubmitUseCase(r.Context(), primary.SubmitUseCaseRequest{
		Draft: submission.Draft{
			Title:       req.Title,
			Description: req.Description,
			UseCase:     req.UseCase,
			SubmittedBy: req.SubmittedBy,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp.Submission)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	names, err := s.categories.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) listSubmissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := submission.Status(q.Get("status"))
	switch status {
	case "", submission.StatusPending, submission.StatusApproved:
	default:
		writeError(w, fault.Validationf("unknown status %q", status))
		return
	}

	list, err := s.submissions.ListSubmissions(r.Context(), primary.SubmissionFilters{
		Status:     string(status),
		SearchTerm: q.Get("search"),
		Category:   q.Get("category"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) approveSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req approveRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.submissions.ApproveSubmission(r.Context(), id, req.Category); err != nil {
		writeError(w, err)
		return
	}

	sub, err := s.submissions.GetSubmission(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (s *Server) rejectSubmission(w http.ResponseWriter, r *http.Request) {
	if err := s.submissions.RejectSubmission(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteSubmission(w http.ResponseWriter, r *http.Request) {
	if err := s.submissions.DeleteSubmission(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addCategory answers 201 on create and 204 when the name was blank or already present.
func (s *Server) addCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.categories.AddCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	if !resp.Created {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, categoryRequest{Name: resp.Name})
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, fault.Validationf("invalid category name: %v", err))
		return
	}
	n, err := s.categories.DeleteCategory(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryDeleted{Name: name, Deleted: n})
}
