package tasksrepobridge

import (
	"strings"
	"unicode/utf8"

	"github.com/jrazmi/tasklist/bridge/scaffolding/errs"
)

// maxTitleLen matches the varchar(200) column constraint.
const maxTitleLen = 200

// Task is the wire shape of a task.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   string `json:"createdAt"`
}

// CreateTaskInput is the create request body.
type CreateTaskInput struct {
	Title string `json:"title"`
}

// Validate implements the web validator interface.
func (c CreateTaskInput) Validate() error {
	return validateTitle(c.Title)
}

// UpdateTaskInput is the update request body. Updates are full-replace: both
// fields are required, so a pointer distinguishes an absent isCompleted from
// an explicit false.
type UpdateTaskInput struct {
	Title       string `json:"title"`
	IsCompleted *bool  `json:"isCompleted"`
}

// Validate implements the web validator interface.
func (u UpdateTaskInput) Validate() error {
	if err := validateTitle(u.Title); err != nil {
		return err
	}
	if u.IsCompleted == nil {
		return errs.Newf(errs.InvalidArgument, "isCompleted is required")
	}
	return nil
}

// validateTitle enforces the title contract: present, non-blank after
// trimming, at most 200 characters.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.Newf(errs.InvalidArgument, "title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errs.Newf(errs.InvalidArgument, "title must be at most %d characters", maxTitleLen)
	}
	return nil
}
