package repository

import (
	"context"

	"taskboard/internal/domain"
)

// UserRepository persists user credential records.
type UserRepository interface {
	// Create inserts a new user. Email uniqueness is enforced by the
	// storage engine; a conflict yields domain.ErrDuplicateEmail.
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TaskRepository persists tasks scoped to an owning user. Every read and
// mutation is keyed by both task id and owner id in a single statement.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	List(ctx context.Context, userID int64, f domain.TaskFilter) ([]*domain.Task, error)
	// Update applies a partial update and returns the updated row.
	// A miss (absent id or foreign owner) yields domain.ErrTaskNotFound.
	Update(ctx context.Context, id, userID int64, upd domain.TaskUpdate) (*domain.Task, error)
	// Delete reports whether a row was actually removed. Deleting an
	// absent or foreign task is not an error.
	Delete(ctx context.Context, id, userID int64) (bool, error)
}
