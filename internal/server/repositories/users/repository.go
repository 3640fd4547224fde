package users

import (
	"context"

	"github.com/dmitrijs2005/finledger/internal/server/models"
)

// Repository is the user directory contract. Lookups return
// common.ErrorNotFound when no user matches; Create returns
// common.ErrUserAlreadyExists when the email is already registered
// (email is the uniqueness key, not the identifier).
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByIDForUpdate behaves like GetByID but, when the repository is bound
	// to a transaction, additionally locks the user row until the transaction
	// ends. The statement service takes this lock before a funds check so two
	// concurrent withdrawals for one user serialize instead of both reading
	// the same stale balance.
	GetByIDForUpdate(ctx context.Context, id string) (*models.User, error)
}
