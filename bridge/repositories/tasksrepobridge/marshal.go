package tasksrepobridge

import (
	"github.com/jrazmi/tasklist/core/repositories/tasksrepo"
	"github.com/jrazmi/tasklist/sdk/validation"
)

// MarshalToBridge converts a core task to its wire shape.
func MarshalToBridge(task tasksrepo.Task) Task {
	return Task{
		ID:          task.TaskID,
		Title:       task.Title,
		IsCompleted: task.IsCompleted,
		CreatedAt:   validation.FormatTimeToString(task.CreatedAt),
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateTaskInput) tasksrepo.NewTask {
	return tasksrepo.NewTask{
		Title: input.Title,
	}
}

// MarshalUpdateToRepository converts bridge update input to repository input.
// Validate has already guaranteed IsCompleted is present.
func MarshalUpdateToRepository(input UpdateTaskInput) tasksrepo.UpdateTask {
	return tasksrepo.UpdateTask{
		Title:       input.Title,
		IsCompleted: validation.GetBoolOrFalse(input.IsCompleted),
	}
}
