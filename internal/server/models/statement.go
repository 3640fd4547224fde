// Package models holds the persistent domain types of the ledger:
// users and their immutable statement entries.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/finledger/internal/common"
)

// OperationType discriminates deposits from withdrawals. It carries the sign
// of a statement in balance aggregation; Amount itself is always positive.
type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// ParseOperationType accepts the wire form of an operation type
// ("DEPOSIT"/"WITHDRAW", case-insensitive) and returns the canonical value.
func ParseOperationType(s string) (OperationType, error) {
	switch OperationType(strings.ToLower(s)) {
	case OperationDeposit:
		return OperationDeposit, nil
	case OperationWithdraw:
		return OperationWithdraw, nil
	default:
		return "", common.ErrInvalidOperationType
	}
}

// Wire returns the upper-case form used in API payloads.
func (t OperationType) Wire() string {
	return strings.ToUpper(string(t))
}

// Statement is one immutable ledger entry. Once created it is never updated
// or deleted; the ordered set of a user's statements is the system of record
// for that user's balance.
type Statement struct {
	ID          string
	UserID      string
	Type        OperationType
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Balance is the result of a balance query: all statements for a user in
// insertion order plus the folded total. The total is always derived from
// the statements, never read from a stored column.
type Balance struct {
	Statements []*Statement
	Balance    decimal.Decimal
}

// Fold recomputes the balance from an insertion-ordered statement slice,
// adding deposits and subtracting withdrawals.
func Fold(statements []*Statement) decimal.Decimal {
	total := decimal.Zero
	for _, st := range statements {
		switch st.Type {
		case OperationDeposit:
			total = total.Add(st.Amount)
		case OperationWithdraw:
			total = total.Sub(st.Amount)
		}
	}
	return total
}
