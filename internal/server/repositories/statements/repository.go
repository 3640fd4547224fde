package statements

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/server/models"
)

// Repository is the append-only statement ledger contract. Statements are
// never updated or deleted; ListByUser returns them in insertion order.
//
// Atomicity contract: Create performs no funds check of its own. A caller
// enforcing the non-negative balance invariant must run SumByUser and Create
// on a repository bound to one transaction, holding the owner's user-row
// lock (users.Repository.GetByIDForUpdate) for the whole unit. Without the
// lock two concurrent withdrawals may both observe the same balance and
// jointly overdraw the account.
type Repository interface {
	Create(ctx context.Context, statement *models.Statement) (*models.Statement, error)
	GetByID(ctx context.Context, id, userID string) (*models.Statement, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Statement, error)
	SumByUser(ctx context.Context, userID string) (decimal.Decimal, error)
}
