package memory

import (
	"context"
	"sync"
	"time"

	"taskboard/internal/domain"
)

// UserRepository is an in-memory implementation used in tests and local
// development. It enforces the same email-uniqueness contract as the
// postgres implementation, atomically under its lock.
type UserRepository struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*domain.User
	byEmail map[string]int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID:  1,
		byID:    make(map[int64]*domain.User),
		byEmail: make(map[string]int64),
	}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return nil, domain.ErrDuplicateEmail
	}

	now := time.Now()
	u := &domain.User{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.nextID++
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID

	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// Delete removes a user record. Only used by tests exercising the
// vanished-user path of the profile endpoint.
func (r *UserRepository) Delete(ctx context.Context, id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byID, id)
	}
}
