package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"taskboard/internal/domain"
)

// TaskRepository is an in-memory implementation mirroring the postgres
// contract: ownership-scoped single operations, stable insertion order.
type TaskRepository struct {
	mu     sync.Mutex
	nextID int64
	tasks  []*domain.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{nextID: 1}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	t.ID = r.nextID
	r.nextID++
	t.Completed = false
	t.CreatedAt = now
	t.UpdatedAt = now

	cp := *t
	r.tasks = append(r.tasks, &cp)
	return nil
}

func (r *TaskRepository) List(ctx context.Context, userID int64, f domain.TaskFilter) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []*domain.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		if f.Priority != nil && t.Priority != *f.Priority {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Search)) {
			continue
		}
		cp := *t
		res = append(res, &cp)
	}
	return res, nil
}

func (r *TaskRepository) Update(ctx context.Context, id, userID int64, upd domain.TaskUpdate) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID != id || t.UserID != userID {
			continue
		}
		if upd.Title != nil {
			t.Title = *upd.Title
		}
		if upd.Description.Set {
			t.Description = upd.Description.Ptr()
		}
		if upd.Completed != nil {
			t.Completed = *upd.Completed
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}
		if upd.DueDate.Set {
			t.DueDate = upd.DueDate.Ptr()
		}
		t.UpdatedAt = time.Now()

		cp := *t
		return &cp, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id && t.UserID == userID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
