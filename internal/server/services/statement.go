// Package services contains the server-side business logic. This file
// implements StatementService, the accounting core: it validates and appends
// deposit/withdrawal statements and derives balances from the ledger.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/dbx"
	"github.com/dmitrijs2005/finledger/internal/server/models"
	"github.com/dmitrijs2005/finledger/internal/server/repositories/repomanager"
)

// StatementService validates and creates statements and computes balances.
// The balance is always derived from the statement history, never stored.
type StatementService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewStatementService constructs a StatementService over the given handle
// and repository manager.
func NewStatementService(db *sql.DB, m repomanager.RepositoryManager) *StatementService {
	return &StatementService{db: db, repomanager: m}
}

// CreateStatement validates and appends one statement for userID.
//
// Validation order: amount and operation type first, then user existence
// (ErrUserNotFound), then — for withdrawals — the funds check
// (ErrInsufficientFunds when amount exceeds the current balance; withdrawing
// the exact balance is allowed). The user lookup locks the user row for the
// duration of the transaction, so the funds check and the append form one
// atomic unit: concurrent withdrawals for the same user serialize rather
// than both passing the check against a stale balance. On any failure
// nothing is persisted.
func (s *StatementService) CreateStatement(ctx context.Context, userID string, opType models.OperationType, amount decimal.Decimal, description string) (*models.Statement, error) {
	if opType != models.OperationDeposit && opType != models.OperationWithdraw {
		return nil, common.ErrInvalidOperationType
	}
	if !amount.IsPositive() {
		return nil, common.ErrInvalidAmount
	}

	var created *models.Statement
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		usersTx := s.repomanager.Users(tx)
		if _, err := usersTx.GetByIDForUpdate(ctx, userID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrUserNotFound
			}
			return fmt.Errorf("error resolving user: %w", err)
		}

		ledger := s.repomanager.Statements(tx)
		if opType == models.OperationWithdraw {
			balance, err := ledger.SumByUser(ctx, userID)
			if err != nil {
				return fmt.Errorf("error computing balance: %w", err)
			}
			if amount.GreaterThan(balance) {
				return common.ErrInsufficientFunds
			}
		}

		now := time.Now().UTC()
		statement := &models.Statement{
			ID:          uuid.NewString(),
			UserID:      userID,
			Type:        opType,
			Amount:      amount,
			Description: description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		var createErr error
		created, createErr = ledger.Create(ctx, statement)
		return createErr
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetBalance returns all statements for userID in insertion order together
// with the folded balance. It is a pure read: calling it twice with no
// intervening writes returns identical results.
func (s *StatementService) GetBalance(ctx context.Context, userID string) (*models.Balance, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	ledger := s.repomanager.Statements(s.db)
	list, err := ledger.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing statements: %w", err)
	}

	return &models.Balance{Statements: list, Balance: models.Fold(list)}, nil
}

// GetStatement fetches a single statement owned by userID. A statement that
// does not exist, or belongs to another user, yields ErrStatementNotFound.
func (s *StatementService) GetStatement(ctx context.Context, userID, statementID string) (*models.Statement, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	ledger := s.repomanager.Statements(s.db)
	statement, err := ledger.GetByID(ctx, statementID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrStatementNotFound
		}
		return nil, fmt.Errorf("error searching statement: %w", err)
	}
	return statement, nil
}

func (s *StatementService) ensureUserExists(ctx context.Context, userID string) error {
	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserNotFound
		}
		return fmt.Errorf("error resolving user: %w", err)
	}
	return nil
}
