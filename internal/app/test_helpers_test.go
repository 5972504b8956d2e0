package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockSubmissionRepository implements secondary.SubmissionRepository for testing.
// It keeps insertion order so listings are deterministic.
type mockSubmissionRepository struct {
	order     []string
	records   map[string]*secondary.SubmissionRecord
	nextID    int
	listCalls int
	createErr error
	updateErr error
	deleteErr error
	listErr   error
}

func newMockSubmissionRepository() *mockSubmissionRepository {
	return &mockSubmissionRepository{
		records: make(map[string]*secondary.SubmissionRecord),
	}
}

func (m *mockSubmissionRepository) List(ctx context.Context) ([]*secondary.SubmissionRecord, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.SubmissionRecord
	for _, id := range m.order {
		if r, ok := m.records[id]; ok {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockSubmissionRepository) GetByID(ctx context.Context, id string) (*secondary.SubmissionRecord, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("submission %s: %w", id, fault.ErrNotFound)
	}
	copied := *r
	return &copied, nil
}

func (m *mockSubmissionRepository) Create(ctx context.Context, rec *secondary.SubmissionRecord) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.nextID++
	id := fmt.Sprintf("SUB-%03d", m.nextID)
	copied := *rec
	copied.ID = id
	m.records[id] = &copied
	m.order = append(m.order, id)
	return id, nil
}

func (m *mockSubmissionRepository) Update(ctx context.Context, id string, patch secondary.SubmissionPatch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	r, ok := m.records[id]
	if !ok {
		return fmt.Errorf("submission %s: %w", id, fault.ErrNotFound)
	}
	if patch.Status != "" {
		r.Status = patch.Status
	}
	if patch.Category != "" {
		r.Category = patch.Category
	}
	return nil
}

func (m *mockSubmissionRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("submission %s: %w", id, fault.ErrNotFound)
	}
	delete(m.records, id)
	return nil
}

// seed inserts a record directly, bypassing the service.
func (m *mockSubmissionRepository) seed(rec secondary.SubmissionRecord) {
	m.records[rec.ID] = &rec
	m.order = append(m.order, rec.ID)
}

// mockCategoryRepository implements secondary.CategoryRepository for testing.
type mockCategoryRepository struct {
	rows      []*secondary.CategoryRecord
	nextID    int
	listCalls int
	createErr error
	deleteErr error
	listErr   error
}

func newMockCategoryRepository(names ...string) *mockCategoryRepository {
	m := &mockCategoryRepository{}
	for _, n := range names {
		_, _ = m.Create(context.Background(), &secondary.CategoryRecord{Name: n})
	}
	return m
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*secondary.CategoryRecord, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]*secondary.CategoryRecord(nil), m.rows...), nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, rec *secondary.CategoryRecord) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.nextID++
	id := fmt.Sprintf("CAT-%03d", m.nextID)
	m.rows = append(m.rows, &secondary.CategoryRecord{ID: id, Name: rec.Name})
	return id, nil
}

func (m *mockCategoryRepository) ListByName(ctx context.Context, name string) ([]*secondary.CategoryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*secondary.CategoryRecord
	for _, r := range m.rows {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, r := range m.rows {
		if r.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return errors.New("category not found")
}

// ============================================================================
// Test Helpers
// ============================================================================

var fixedNow = time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

type testRig struct {
	submissionRepo *mockSubmissionRepository
	categoryRepo   *mockCategoryRepository
	submissions    *SubmissionServiceImpl
	categories     *CategoryServiceImpl
	controller     *Controller
}

func newTestRig(categories ...string) *testRig {
	subRepo := newMockSubmissionRepository()
	catRepo := newMockCategoryRepository(categories...)

	subs := NewSubmissionService(subRepo)
	subs.now = func() time.Time { return fixedNow }
	cats := NewCategoryService(catRepo)

	ctrl := NewController(NewEffectRunner(subs, cats, log.New(io.Discard, "", 0)))
	ctrl.now = func() time.Time { return fixedNow }

	return &testRig{
		submissionRepo: subRepo,
		categoryRepo:   catRepo,
		submissions:    subs,
		categories:     cats,
		controller:     ctrl,
	}
}
