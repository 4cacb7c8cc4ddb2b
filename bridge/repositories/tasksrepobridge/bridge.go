package tasksrepobridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/tasklist/bridge/scaffolding/errs"
	"github.com/jrazmi/tasklist/core/repositories/tasksrepo"
	"github.com/jrazmi/tasklist/infrastructure/web"
)

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	taskRepository *tasksrepo.Repository
}

// newBridge creates a new Task bridge
func newBridge(taskRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		taskRepository: taskRepository,
	}
}

// taskID parses the task_id path value. A value that does not parse as a
// positive integer is a client error; a parseable id that matches no row is
// the repository's not-found.
func taskID(r *http.Request) (int64, error) {
	raw := web.Param(r, "task_id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Newf(errs.InvalidArgument, "invalid task id: %s", raw)
	}

	return id, nil
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.taskRepository.Query(ctx)
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	id, err := taskID(r)
	if err != nil {
		return errs.GetError(err)
	}

	task, err := b.taskRepository.QueryByID(ctx, id)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", id)
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	task, err := b.taskRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return errs.New(errs.InternalOnlyLog, err)
	}

	if w := web.GetWriter(ctx); w != nil {
		w.Header().Set("Location", fmt.Sprintf("/api/tasks/%d", task.TaskID))
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	id, err := taskID(r)
	if err != nil {
		return errs.GetError(err)
	}

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	if _, err := b.taskRepository.Update(ctx, id, MarshalUpdateToRepository(input)); err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", id)
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewStatusResponse(http.StatusNoContent)
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	id, err := taskID(r)
	if err != nil {
		return errs.GetError(err)
	}

	if err := b.taskRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task %d not found", id)
		}
		return errs.New(errs.InternalOnlyLog, err)
	}

	return web.NewStatusResponse(http.StatusNoContent)
}
