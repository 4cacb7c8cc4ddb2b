package tasksrepobridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jrazmi/tasklist/bridge/scaffolding/mid"
	"github.com/jrazmi/tasklist/core/repositories/tasksrepo"
	"github.com/jrazmi/tasklist/infrastructure/web"
	"github.com/jrazmi/tasklist/sdk/logger"
	"github.com/jrazmi/tasklist/sdk/telemetry"
)

// memStore is an in-memory Storer so the full HTTP stack can be exercised
// without a database. failWith, when set, makes every operation fail.
type memStore struct {
	tasks    []tasksrepo.Task
	nextID   int64
	failWith error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) Query(ctx context.Context) ([]tasksrepo.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}

	// Newest first, matching the database ordering.
	out := make([]tasksrepo.Task, len(m.tasks))
	for i, task := range m.tasks {
		out[len(m.tasks)-1-i] = task
	}
	return out, nil
}

func (m *memStore) QueryByID(ctx context.Context, taskID int64) (tasksrepo.Task, error) {
	if m.failWith != nil {
		return tasksrepo.Task{}, m.failWith
	}
	for _, task := range m.tasks {
		if task.TaskID == taskID {
			return task, nil
		}
	}
	return tasksrepo.Task{}, tasksrepo.ErrNotFound
}

func (m *memStore) Create(ctx context.Context, input tasksrepo.NewTask) (tasksrepo.Task, error) {
	if m.failWith != nil {
		return tasksrepo.Task{}, m.failWith
	}
	task := tasksrepo.Task{
		TaskID:    m.nextID,
		Title:     input.Title,
		CreatedAt: time.Now().UTC(),
	}
	m.nextID++
	m.tasks = append(m.tasks, task)
	return task, nil
}

func (m *memStore) Update(ctx context.Context, taskID int64, input tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	if m.failWith != nil {
		return tasksrepo.Task{}, m.failWith
	}
	for i, task := range m.tasks {
		if task.TaskID == taskID {
			m.tasks[i].Title = input.Title
			m.tasks[i].IsCompleted = input.IsCompleted
			return m.tasks[i], nil
		}
	}
	return tasksrepo.Task{}, tasksrepo.ErrNotFound
}

func (m *memStore) Delete(ctx context.Context, taskID int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i, task := range m.tasks {
		if task.TaskID == taskID {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return tasksrepo.ErrNotFound
}

// newTestHandler wires the bridge through the real web handler and middleware
// chain so tests observe the same behavior as production requests.
func newTestHandler(store *memStore) http.Handler {
	log := logger.NewDefault(logger.WithOutput(io.Discard))

	wh := web.NewWebHandler(web.HandlerOptions{},
		web.WithLogging(log.Logger),
		web.WithTelemetry(telemetry.NewTelemetry()),
		web.WithGlobalMiddleware(
			mid.Logger(log),
			mid.Errors(log),
			mid.Metrics(),
			mid.Panics(),
		),
	)

	group := wh.Group("/api")
	AddHttpRoutes(group, Config{
		Log:        log,
		Repository: tasksrepo.NewRepository(log, store),
	})

	return wh
}

func do(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) Task {
	t.Helper()

	var task Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("decoding task body %q: %v", rec.Body.String(), err)
	}
	return task
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestTaskLifecycle(t *testing.T) {
	handler := newTestHandler(newMemStore())

	// Empty list.
	rec := do(t, handler, http.MethodGet, "/api/tasks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got status %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("list: got body %q, want []", got)
	}

	// Create.
	rec = do(t, handler, http.MethodPost, "/api/tasks", `{"title":"write the report"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	created := decodeTask(t, rec)
	if created.ID != 1 {
		t.Errorf("create: got id %d, want 1", created.ID)
	}
	if created.IsCompleted {
		t.Error("create: new task should not be completed")
	}
	if got, want := rec.Header().Get("Location"), "/api/tasks/1"; got != want {
		t.Errorf("create: got Location %q, want %q", got, want)
	}
	if _, err := time.Parse(time.RFC3339, created.CreatedAt); err != nil {
		t.Errorf("create: createdAt %q is not RFC3339: %v", created.CreatedAt, err)
	}

	// Fetch it back.
	rec = do(t, handler, http.MethodGet, "/api/tasks/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: got status %d, want 200", rec.Code)
	}
	if got := decodeTask(t, rec); got != created {
		t.Errorf("get: got %+v, want %+v", got, created)
	}

	// Full replace: rename and complete.
	rec = do(t, handler, http.MethodPut, "/api/tasks/1", `{"title":"write the report v2","isCompleted":true}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update: got status %d, want 204: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.Len() != 0 {
		t.Errorf("update: got body %q, want empty", rec.Body.String())
	}

	rec = do(t, handler, http.MethodGet, "/api/tasks/1", "")
	updated := decodeTask(t, rec)
	if updated.Title != "write the report v2" || !updated.IsCompleted {
		t.Errorf("get after update: got %+v", updated)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Errorf("get after update: createdAt changed from %q to %q", created.CreatedAt, updated.CreatedAt)
	}

	// Delete, then confirm it is gone.
	rec = do(t, handler, http.MethodDelete, "/api/tasks/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: got status %d, want 204", rec.Code)
	}

	rec = do(t, handler, http.MethodDelete, "/api/tasks/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: got status %d, want 404", rec.Code)
	}

	rec = do(t, handler, http.MethodGet, "/api/tasks/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: got status %d, want 404", rec.Code)
	}
}

func TestTaskListOrdering(t *testing.T) {
	handler := newTestHandler(newMemStore())

	for i := 1; i <= 3; i++ {
		rec := do(t, handler, http.MethodPost, "/api/tasks", fmt.Sprintf(`{"title":"task %d"}`, i))
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %d: got status %d, want 201", i, rec.Code)
		}
	}

	rec := do(t, handler, http.MethodGet, "/api/tasks", "")
	var tasks []Task
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("list: got %d tasks, want 3", len(tasks))
	}
	for i, want := range []int64{3, 2, 1} {
		if tasks[i].ID != want {
			t.Errorf("list[%d]: got id %d, want %d (newest first)", i, tasks[i].ID, want)
		}
	}
}

func TestTaskValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "create empty title", method: http.MethodPost, path: "/api/tasks", body: `{"title":""}`},
		{name: "create blank title", method: http.MethodPost, path: "/api/tasks", body: `{"title":"   "}`},
		{name: "create title too long", method: http.MethodPost, path: "/api/tasks", body: fmt.Sprintf(`{"title":%q}`, strings.Repeat("a", 201))},
		{name: "create malformed json", method: http.MethodPost, path: "/api/tasks", body: `{"title":`},
		{name: "create empty body", method: http.MethodPost, path: "/api/tasks", body: " "},
		{name: "update missing isCompleted", method: http.MethodPut, path: "/api/tasks/1", body: `{"title":"x"}`},
		{name: "update blank title", method: http.MethodPut, path: "/api/tasks/1", body: `{"title":" ","isCompleted":true}`},
		{name: "get non-numeric id", method: http.MethodGet, path: "/api/tasks/abc", body: ""},
		{name: "delete non-numeric id", method: http.MethodDelete, path: "/api/tasks/abc", body: ""},
		{name: "update zero id", method: http.MethodPut, path: "/api/tasks/0", body: `{"title":"x","isCompleted":false}`},
	}

	store := newMemStore()
	handler := newTestHandler(store)
	do(t, handler, http.MethodPost, "/api/tasks", `{"title":"seed"}`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, tt.method, tt.path, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400: %s", rec.Code, rec.Body.String())
			}
			if msg := decodeError(t, rec); msg == "" {
				t.Error("expected an error message in the body")
			}
		})
	}

	// Validation failures must not touch the store.
	if len(store.tasks) != 1 {
		t.Errorf("store has %d tasks after invalid requests, want 1", len(store.tasks))
	}
}

func TestTaskNotFound(t *testing.T) {
	handler := newTestHandler(newMemStore())

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "get", method: http.MethodGet, path: "/api/tasks/42", body: ""},
		{name: "update", method: http.MethodPut, path: "/api/tasks/42", body: `{"title":"x","isCompleted":true}`},
		{name: "delete", method: http.MethodDelete, path: "/api/tasks/42", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, tt.method, tt.path, tt.body)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("got status %d, want 404: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestTaskStoreFailure(t *testing.T) {
	store := newMemStore()
	handler := newTestHandler(store)

	do(t, handler, http.MethodPost, "/api/tasks", `{"title":"seed"}`)
	store.failWith = errors.New("connection refused")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "list", method: http.MethodGet, path: "/api/tasks", body: ""},
		{name: "get", method: http.MethodGet, path: "/api/tasks/1", body: ""},
		{name: "create", method: http.MethodPost, path: "/api/tasks", body: `{"title":"x"}`},
		{name: "update", method: http.MethodPut, path: "/api/tasks/1", body: `{"title":"x","isCompleted":true}`},
		{name: "delete", method: http.MethodDelete, path: "/api/tasks/1", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, handler, tt.method, tt.path, tt.body)
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("got status %d, want 500: %s", rec.Code, rec.Body.String())
			}

			// Internal detail must not leak to the client.
			if msg := decodeError(t, rec); strings.Contains(msg, "connection refused") {
				t.Errorf("error body leaked store detail: %q", msg)
			}
		})
	}
}
