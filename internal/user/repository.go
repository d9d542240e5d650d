package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailExists   = errors.New("email already exists")
	ErrEmailRequired = errors.New("email is required")
)

// Repository is the persistence contract the resolver depends on.
//
// Upsert must be a single atomic create-or-update keyed by create.Email: the
// insert path stores create as given, the existing-row path applies only the
// non-nil fields of update. The returned bool reports whether a row was
// inserted. A uniqueness violation on email is reported as ErrEmailExists.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Upsert(ctx context.Context, create User, update Preferences) (User, bool, error)
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User // keyed by email
	now   func() time.Time
}

var _ Repository = (*InMemoryRepository)(nil)

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	repo := &InMemoryRepository{
		users: make(map[string]User, len(seed)),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, user := range seed {
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		repo.users[user.Email] = user.clone()
	}
	return repo
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return user.clone(), nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, create User, update Preferences) (User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if existing, ok := r.users[create.Email]; ok {
		existing.apply(update)
		existing.UpdatedAt = now
		r.users[existing.Email] = existing
		return existing.clone(), false, nil
	}

	stored := create.clone()
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.users[stored.Email] = stored
	return stored.clone(), true, nil
}
