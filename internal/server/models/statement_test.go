package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/finledger/internal/common"
)

func TestParseOperationType(t *testing.T) {
	tests := []struct {
		in      string
		want    OperationType
		wantErr bool
	}{
		{"DEPOSIT", OperationDeposit, false},
		{"WITHDRAW", OperationWithdraw, false},
		{"deposit", OperationDeposit, false},
		{"Withdraw", OperationWithdraw, false},
		{"TRANSFER", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		got, err := ParseOperationType(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, common.ErrInvalidOperationType, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestOperationType_Wire(t *testing.T) {
	assert.Equal(t, "DEPOSIT", OperationDeposit.Wire())
	assert.Equal(t, "WITHDRAW", OperationWithdraw.Wire())
}

func TestFold(t *testing.T) {
	d := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }

	statements := []*Statement{
		{Type: OperationDeposit, Amount: d("100")},
		{Type: OperationDeposit, Amount: d("50.25")},
		{Type: OperationWithdraw, Amount: d("30")},
	}

	assert.True(t, Fold(statements).Equal(d("120.25")))
}

func TestFold_Empty(t *testing.T) {
	assert.True(t, Fold(nil).IsZero())
}
