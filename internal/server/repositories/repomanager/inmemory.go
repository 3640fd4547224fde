package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/finledger/internal/dbx"
	"github.com/dmitrijs2005/finledger/internal/server/repositories/statements"
	"github.com/dmitrijs2005/finledger/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves the map-backed repositories regardless of
// the database handle it is asked for. Used by service tests, where the
// transaction boundaries are a no-op.
type InMemoryRepositoryManager struct {
	users      *users.InMemoryRepository
	statements *statements.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:      users.NewInMemoryRepository(),
		statements: statements.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Statements(db dbx.DBTX) statements.Repository {
	return m.statements
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}
