package statements

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/models"
)

// InMemoryRepository is a slice-backed ledger used by tests. The slice keeps
// insertion order, which is the order ListByUser reports. Every instance is
// an explicit empty store sharing no state with any other instance.
type InMemoryRepository struct {
	mu         sync.RWMutex
	statements []*models.Statement
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, statement *models.Statement) (*models.Statement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *statement
	r.statements = append(r.statements, &stored)
	return statement, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id, userID string) (*models.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, st := range r.statements {
		if st.ID == id && st.UserID == userID {
			copied := *st
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Statement, 0)
	for _, st := range r.statements {
		if st.UserID == userID {
			copied := *st
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) SumByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	list, err := r.ListByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return models.Fold(list), nil
}
