package statements

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/models"
)

func deposit(id, userID, amount string) *models.Statement {
	return &models.Statement{ID: id, UserID: userID, Type: models.OperationDeposit, Amount: decimal.RequireFromString(amount)}
}

func withdraw(id, userID, amount string) *models.Statement {
	return &models.Statement{ID: id, UserID: userID, Type: models.OperationWithdraw, Amount: decimal.RequireFromString(amount)}
}

func TestInMemory_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for _, st := range []*models.Statement{
		deposit("st-1", "u-1", "100"),
		withdraw("st-2", "u-1", "30"),
		deposit("st-3", "u-2", "999"),
		deposit("st-4", "u-1", "5"),
	} {
		_, err := repo.Create(ctx, st)
		require.NoError(t, err)
	}

	list, err := repo.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "st-1", list[0].ID)
	assert.Equal(t, "st-2", list[1].ID)
	assert.Equal(t, "st-4", list[2].ID)
}

func TestInMemory_SumByUser(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, deposit("st-1", "u-1", "100"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, withdraw("st-2", "u-1", "40.50"))
	require.NoError(t, err)

	sum, err := repo.SumByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("59.50")))

	empty, err := repo.SumByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestInMemory_GetByID_OwnershipChecked(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, deposit("st-1", "u-1", "100"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "st-1", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "st-1", got.ID)

	_, err = repo.GetByID(ctx, "st-1", "u-2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInMemory_InstancesShareNoState(t *testing.T) {
	ctx := context.Background()

	a := NewInMemoryRepository()
	_, err := a.Create(ctx, deposit("st-1", "u-1", "100"))
	require.NoError(t, err)

	b := NewInMemoryRepository()
	list, err := b.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
