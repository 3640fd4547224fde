package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/models"
)

// InMemoryRepository is a map-backed user directory used by tests. It is an
// explicit store object: every instance starts empty and shares no state
// with any other instance.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, common.ErrUserAlreadyExists
		}
	}

	stored := *user
	r.users[user.ID] = &stored
	return user, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

// GetByIDForUpdate is equivalent to GetByID here: the in-memory store has no
// transactions, so callers needing serialization rely on the repository mutex.
func (r *InMemoryRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}
