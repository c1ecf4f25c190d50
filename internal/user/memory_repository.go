package user

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"
)

var _ Repository = (*MemoryRepository)(nil)

// MemoryRepository keeps users in process memory. Data is lost on restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[int64]*User
	byEmail map[string]int64
	lastID  int64
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[int64]*User),
		byEmail: make(map[string]int64),
		now:     time.Now,
	}
}

func (r *MemoryRepository) Find(_ context.Context, userID int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	found := *u
	return &found, nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	found := *r.users[id]
	return &found, nil
}

func (r *MemoryRepository) Create(_ context.Context, params CreateParams) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[params.Email]; taken {
		return nil, ErrDuplicateEmail
	}

	r.lastID++
	now := r.now().UTC()
	u := &User{
		ID:           r.lastID,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	r.byEmail[u.Email] = u.ID

	created := *u
	return &created, nil
}

func (r *MemoryRepository) Update(_ context.Context, userID int64, params UpdateParams) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, ErrNotFound
	}

	if params.Email != nil {
		if owner, taken := r.byEmail[*params.Email]; taken && owner != userID {
			return nil, ErrDuplicateEmail
		}
	}

	if params.Name != nil {
		u.Name = *params.Name
	}
	if params.Email != nil && *params.Email != u.Email {
		delete(r.byEmail, u.Email)
		u.Email = *params.Email
		r.byEmail[u.Email] = u.ID
	}
	u.UpdatedAt = r.now().UTC()

	updated := *u
	return &updated, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	slices.SortFunc(users, func(a, b User) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return users, nil
}
