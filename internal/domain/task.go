package domain

import "time"

// Priority of a task. Stored as a postgres enum with the same values.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Completed   bool       `db:"completed" json:"completed"`
	Priority    Priority   `db:"priority" json:"priority"`
	DueDate     *time.Time `db:"due_date" json:"due_date"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// TaskFilter narrows a task listing. Nil fields are not applied; the
// owner scope is always applied by the repository.
type TaskFilter struct {
	Completed *bool
	Priority  *Priority
	Search    string
}

// TaskUpdate carries a partial update. Fields left absent keep their
// stored value; Description and DueDate can be set to an explicit null.
type TaskUpdate struct {
	Title       *string
	Description Optional[string]
	Completed   *bool
	Priority    *Priority
	DueDate     Optional[time.Time]
}

// Empty reports whether the update touches no fields at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && !u.Description.Set && u.Completed == nil &&
		u.Priority == nil && !u.DueDate.Set
}
