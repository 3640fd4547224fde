// Package statements provides the append-only statement ledger:
// PostgreSQL-backed in production, map-backed in tests.
package statements

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/dbx"
	"github.com/dmitrijs2005/finledger/internal/server/models"
)

// PostgresRepository implements statement storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, statement *models.Statement) (*models.Statement, error) {
	query :=
		`INSERT INTO statements (id, user_id, type, amount, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 `

	_, err := r.db.ExecContext(ctx, query,
		statement.ID, statement.UserID, string(statement.Type), statement.Amount,
		statement.Description, statement.CreatedAt, statement.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return statement, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.Statement, error) {
	query :=
		`SELECT id, user_id, type, amount, description, created_at, updated_at FROM statements
		 WHERE id = $1 AND user_id = $2
		 `

	statement := &models.Statement{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&statement.ID, &statement.UserID, &statement.Type, &statement.Amount,
		&statement.Description, &statement.CreatedAt, &statement.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return statement, nil
}

// ListByUser returns all statements for userID in insertion order. The id is
// the tiebreaker for rows sharing a creation timestamp.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Statement, error) {
	query :=
		`SELECT id, user_id, type, amount, description, created_at, updated_at FROM statements
		 WHERE user_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select statements: %w", err)
	}
	defer rows.Close()

	var result []*models.Statement
	for rows.Next() {
		var item models.Statement
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Type, &item.Amount,
			&item.Description, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SumByUser computes the signed total of the user's ledger in the database:
// deposits count positive, withdrawals negative. An empty ledger sums to zero.
func (r *PostgresRepository) SumByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	query :=
		`SELECT COALESCE(SUM(CASE WHEN type = 'deposit' THEN amount ELSE -amount END), 0) FROM statements
		 WHERE user_id = $1
		 `

	var sum decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("db error: %w", err)
	}

	return sum, nil
}
