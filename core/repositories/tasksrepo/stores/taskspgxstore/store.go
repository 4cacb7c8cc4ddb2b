// Package taskspgxstore provides the Postgres implementation of the task
// Storer interface.
package taskspgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/tasklist/core/repositories/tasksrepo"
	"github.com/jrazmi/tasklist/infrastructure/postgresdb"
	"github.com/jrazmi/tasklist/sdk/logger"
)

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// Query retrieves all tasks ordered by created_at descending. The task_id
// tie-break keeps the order total when timestamps collide.
func (s *Store) Query(ctx context.Context) ([]tasksrepo.Task, error) {
	query := `SELECT task_id, title, is_completed, created_at FROM public.tasks ORDER BY created_at DESC, task_id DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return records, nil
}

// QueryByID retrieves a single task by id.
func (s *Store) QueryByID(ctx context.Context, taskID int64) (tasksrepo.Task, error) {
	query := `SELECT task_id, title, is_completed, created_at FROM public.tasks WHERE task_id = @task_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Create inserts a new task. The database assigns task_id and created_at and
// defaults is_completed to false; RETURNING hands the full row back.
func (s *Store) Create(ctx context.Context, input tasksrepo.NewTask) (tasksrepo.Task, error) {
	query := `INSERT INTO public.tasks (title) VALUES (@title) RETURNING task_id, title, is_completed, created_at`

	args := pgx.NamedArgs{
		"title": input.Title,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Update overwrites title and is_completed on the task with the given id.
// created_at is never part of the SET list.
func (s *Store) Update(ctx context.Context, taskID int64, input tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	query := `UPDATE public.tasks SET title = @title, is_completed = @is_completed WHERE task_id = @task_id RETURNING task_id, title, is_completed, created_at`

	args := pgx.NamedArgs{
		"task_id":      taskID,
		"title":        input.Title,
		"is_completed": input.IsCompleted,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tasksrepo.Task])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tasksrepo.Task{}, tasksrepo.ErrNotFound
		}
		return tasksrepo.Task{}, postgresdb.HandlePgError(err)
	}

	return record, nil
}

// Delete removes the task with the given id.
func (s *Store) Delete(ctx context.Context, taskID int64) error {
	query := `DELETE FROM public.tasks WHERE task_id = @task_id`

	args := pgx.NamedArgs{
		"task_id": taskID,
	}

	result, err := s.pool.Exec(ctx, query, args)
	if err != nil {
		return postgresdb.HandlePgError(err)
	}

	if result.RowsAffected() == 0 {
		return tasksrepo.ErrNotFound
	}

	return nil
}
