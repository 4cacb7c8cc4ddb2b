package tasksrepo

import "time"

// Task is the main entity type: a titled, completable, timestamped unit of
// work. TaskID and CreatedAt are assigned by the store on creation and never
// change afterward.
type Task struct {
	TaskID      int64     `db:"task_id" json:"taskId"`
	Title       string    `db:"title" json:"title"`
	IsCompleted bool      `db:"is_completed" json:"isCompleted"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// NewTask contains the fields for creating a new task. Everything else is
// assigned by the store.
type NewTask struct {
	Title string
}

// UpdateTask contains the full desired state of the mutable columns. Updates
// are full-replace: both fields are written on every update, and CreatedAt is
// never touched.
type UpdateTask struct {
	Title       string
	IsCompleted bool
}
