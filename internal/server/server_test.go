package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/casebook/internal/adapters/sqlite"
	"github.com/example/casebook/internal/app"
	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/core/session"
	"github.com/example/casebook/internal/core/submission"
	"github.com/example/casebook/internal/db"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "casebook.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	srv := New(
		app.NewSubmissionService(sqlite.NewSubmissionRepository(conn)),
		app.NewCategoryService(sqlite.NewCategoryRepository(conn)),
	)
	return &testAPI{t: t, handler: srv.Router()}
}

func (a *testAPI) do(method, path string, body any, admin bool) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set(AdminPasswordHeader, session.AdminSecret)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func contractReview() map[string]string {
	return map[string]string{
		"title":       "Contract Review",
		"description": "Automates clause flagging",
		"useCase":     "Saves 5 hours/week",
		"submittedBy": "Alex",
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodGet, "/healthz", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decode[map[string]string](t, rec)
	if body["status"] != "ok" || !strings.HasPrefix(body["version"], "casebook") {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestSubmitAndModerate(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/admin/categories", map[string]string{"name": "Litigation"}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add category status = %d: %s", rec.Code, rec.Body)
	}

	rec = api.do(http.MethodPost, "/api/use-cases", contractReview(), false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d: %s", rec.Code, rec.Body)
	}
	created := decode[submission.Submission](t, rec)
	if created.Status != submission.StatusPending || created.Category != "" || created.Tags == nil {
		t.Errorf("unexpected created submission: %+v", created)
	}

	browse := decode[[]submission.Submission](t, api.do(http.MethodGet, "/api/use-cases", nil, false))
	if len(browse) != 0 {
		t.Fatalf("pending submission must not be browsable, got %+v", browse)
	}

	pending := decode[[]submission.Submission](t, api.do(http.MethodGet, "/api/admin/submissions?status=pending", nil, true))
	if len(pending) != 1 || pending[0].ID != created.ID {
		t.Fatalf("expected the new submission pending, got %+v", pending)
	}

	rec = api.do(http.MethodPost, "/api/admin/submissions/"+created.ID+"/approve", map[string]string{"category": "Litigation"}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d: %s", rec.Code, rec.Body)
	}
	approved := decode[submission.Submission](t, rec)
	if approved.Status != submission.StatusApproved || approved.Category != "Litigation" {
		t.Errorf("unexpected approved submission: %+v", approved)
	}

	browse = decode[[]submission.Submission](t, api.do(http.MethodGet, "/api/use-cases?search=CLAUSE&category=Litigation", nil, false))
	if len(browse) != 1 || browse[0].ID != created.ID {
		t.Errorf("expected approved submission browsable, got %+v", browse)
	}

	rec = api.do(http.MethodPost, "/api/admin/submissions/"+created.ID+"/approve", map[string]string{"category": "Research"}, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("re-approve status = %d, want 400", rec.Code)
	}

	rec = api.do(http.MethodDelete, "/api/admin/submissions/"+created.ID, nil, true)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}
	browse = decode[[]submission.Submission](t, api.do(http.MethodGet, "/api/use-cases", nil, false))
	if len(browse) != 0 {
		t.Errorf("expected no submissions after delete, got %+v", browse)
	}
}

func TestSubmitValidation(t *testing.T) {
	api := newTestAPI(t)

	body := contractReview()
	body["submittedBy"] = "   "
	rec := api.do(http.MethodPost, "/api/use-cases", body, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	resp := decode[errorResponse](t, rec)
	if resp.Error != submission.ReasonMissingFields {
		t.Errorf("error = %q, want %q", resp.Error, submission.ReasonMissingFields)
	}

	rec = api.do(http.MethodPost, "/api/use-cases", map[string]any{"title": 42}, false)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec.Code)
	}
}

func TestApproveErrors(t *testing.T) {
	api := newTestAPI(t)
	created := decode[submission.Submission](t, api.do(http.MethodPost, "/api/use-cases", contractReview(), false))

	tests := []struct {
		name     string
		path     string
		category string
		want     int
	}{
		{name: "blank category", path: "/api/admin/submissions/" + created.ID + "/approve", category: "", want: http.StatusBadRequest},
		{name: "unknown submission", path: "/api/admin/submissions/missing/approve", category: "Litigation", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, tt.path, map[string]string{"category": tt.category}, true)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
		})
	}
}

func TestAdminRequiresPassword(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/submissions"},
		{http.MethodPost, "/api/admin/submissions/x/reject"},
		{http.MethodDelete, "/api/admin/submissions/x"},
		{http.MethodPost, "/api/admin/categories"},
		{http.MethodDelete, "/api/admin/categories/Litigation"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := api.do(tt.method, tt.path, nil, false)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			if resp := decode[errorResponse](t, rec); resp.Error != session.MsgInvalidPassword {
				t.Errorf("error = %q", resp.Error)
			}
		})
	}
}

func TestListSubmissions_UnknownStatus(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodGet, "/api/admin/submissions?status=rejected", nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRejectApproved(t *testing.T) {
	api := newTestAPI(t)
	created := decode[submission.Submission](t, api.do(http.MethodPost, "/api/use-cases", contractReview(), false))

	rec := api.do(http.MethodPost, "/api/admin/submissions/"+created.ID+"/approve", map[string]string{"category": "Litigation"}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d: %s", rec.Code, rec.Body)
	}

	rec = api.do(http.MethodPost, "/api/admin/submissions/"+created.ID+"/reject", nil, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("reject status = %d, want 400: %s", rec.Code, rec.Body)
	}
	body := decode[errorResponse](t, rec)
	if body.Kind != fault.Validation {
		t.Errorf("kind = %q, want %q", body.Kind, fault.Validation)
	}

	browse := decode[[]submission.Submission](t, api.do(http.MethodGet, "/api/use-cases", nil, false))
	if len(browse) != 1 || browse[0].ID != created.ID {
		t.Errorf("approved submission must survive a refused reject, got %+v", browse)
	}
}

func TestRejectMissing(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(http.MethodPost, "/api/admin/submissions/missing/reject", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCategories(t *testing.T) {
	api := newTestAPI(t)

	for _, name := range []string{"Litigation", "Machine Learning"} {
		if rec := api.do(http.MethodPost, "/api/admin/categories", map[string]string{"name": name}, true); rec.Code != http.StatusCreated {
			t.Fatalf("add %q status = %d", name, rec.Code)
		}
	}

	for _, name := range []string{"Litigation", "  Litigation  ", "   "} {
		if rec := api.do(http.MethodPost, "/api/admin/categories", map[string]string{"name": name}, true); rec.Code != http.StatusNoContent {
			t.Errorf("add %q status = %d, want 204", name, rec.Code)
		}
	}

	names := decode[[]string](t, api.do(http.MethodGet, "/api/categories", nil, false))
	if diff := cmp.Diff([]string{"Litigation", "Machine Learning"}, names); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}

	rec := api.do(http.MethodDelete, "/api/admin/categories/Machine%20Learning", nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d: %s", rec.Code, rec.Body)
	}
	if got := decode[categoryDeleted](t, rec); got.Deleted != 1 || got.Name != "Machine Learning" {
		t.Errorf("unexpected delete response %+v", got)
	}

	names = decode[[]string](t, api.do(http.MethodGet, "/api/categories", nil, false))
	if diff := cmp.Diff([]string{"Litigation"}, names); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(errString("boom")); got != http.StatusInternalServerError {
		t.Errorf("unclassified error status = %d, want 500", got)
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestAdminActions_LogActor(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	api := newTestAPI(t)
	created := decode[submission.Submission](t, api.do(http.MethodPost, "/api/use-cases", contractReview(), false))

	rec := api.do(http.MethodPost, "/api/admin/submissions/"+created.ID+"/reject", nil, true)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("reject status = %d: %s", rec.Code, rec.Body)
	}

	// httptest requests originate from 192.0.2.1:1234.
	want := "api 192.0.2.1:1234 rejected submission " + created.ID
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected log line %q, got %q", want, buf.String())
	}
}
