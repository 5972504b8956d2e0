package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/core/session"
	"github.com/example/casebook/internal/ctxutil"
)

type errorResponse struct {
	Error string     `json:"error"`
	Kind  fault.Kind `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	kind := fault.KindOf(err)
	if status >= http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}

func readJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fault.Validationf("invalid request body: %v", err)
	}
	return nil
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	if errors.Is(err, fault.ErrNotFound) {
		return http.StatusNotFound
	}
	switch fault.KindOf(err) {
	case fault.Validation:
		return http.StatusBadRequest
	case fault.InvalidCredential:
		return http.StatusUnauthorized
	case fault.Store:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// requireAdmin admits requests carrying the admin password and names
// the caller as the actor of whatever the handler does.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := session.Authorize(r.Header.Get(AdminPasswordHeader)); err != nil {
			log.Printf("admin request from %s refused", r.RemoteAddr)
			writeError(w, err)
			return
		}
		ctx := ctxutil.WithActor(r.Context(), "api "+r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
