// Package repomanager hands out repositories bound to a specific database
// handle, so services can run the same repository code against *sql.DB or
// an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/finledger/internal/dbx"
	"github.com/dmitrijs2005/finledger/internal/server/repositories/statements"
	"github.com/dmitrijs2005/finledger/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Statements(db dbx.DBTX) statements.Repository
}
