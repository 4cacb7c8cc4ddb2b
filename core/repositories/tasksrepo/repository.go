// Package tasksrepo provides access to task storage.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jrazmi/tasklist/sdk/logger"
)

// ErrNotFound is returned when a requested task does not exist.
var ErrNotFound = errors.New("task not found")

// Storer defines the complete data storage interface for Task. The store
// owns identity generation and timestamp defaults; the repository holds no
// state between requests.
type Storer interface {
	Query(ctx context.Context) ([]Task, error)
	QueryByID(ctx context.Context, taskID int64) (Task, error)
	Create(ctx context.Context, input NewTask) (Task, error)
	Update(ctx context.Context, taskID int64, input UpdateTask) (Task, error)
	Delete(ctx context.Context, taskID int64) error
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Query returns every task ordered by creation time, newest first.
func (r *Repository) Query(ctx context.Context) ([]Task, error) {
	tasks, err := r.storer.Query(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	return tasks, nil
}

// QueryByID returns the task with the given id.
func (r *Repository) QueryByID(ctx context.Context, taskID int64) (Task, error) {
	task, err := r.storer.QueryByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("query task %d: %w", taskID, err)
	}

	return task, nil
}

// Create persists a new task. The store assigns the id and creation
// timestamp; completion always starts false.
func (r *Repository) Create(ctx context.Context, input NewTask) (Task, error) {
	task, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "created task", "task_id", task.TaskID)
	return task, nil
}

// Update overwrites both mutable fields of the task with the given id.
func (r *Repository) Update(ctx context.Context, taskID int64, input UpdateTask) (Task, error) {
	task, err := r.storer.Update(ctx, taskID, input)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Task{}, ErrNotFound
		}
		return Task{}, fmt.Errorf("update task %d: %w", taskID, err)
	}

	return task, nil
}

// Delete removes the task with the given id.
func (r *Repository) Delete(ctx context.Context, taskID int64) error {
	if err := r.storer.Delete(ctx, taskID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}

	r.log.InfoContext(ctx, "deleted task", "task_id", taskID)
	return nil
}
