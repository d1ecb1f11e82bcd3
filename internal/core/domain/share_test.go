package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/apperrors"
	"github.com/splittab/splittab_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareMapRejectsNegativeWeights(t *testing.T) {
	_, err := domain.NewShareMap(map[domain.AccountID]decimal.Decimal{
		1: decimal.NewFromInt(1),
		2: decimal.NewFromInt(-1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewShareMapAcceptsZeroWeights(t *testing.T) {
	shares, err := domain.NewShareMap(map[domain.AccountID]decimal.Decimal{
		1: decimal.NewFromInt(1),
		2: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, shares.TotalWeight().Equal(decimal.NewFromInt(1)))
}

func TestShareMapDistributeProportionally(t *testing.T) {
	shares := domain.ShareMap{
		1: decimal.NewFromInt(1),
		2: decimal.NewFromInt(3),
	}
	portions := shares.Distribute(decimal.NewFromInt(100))

	require.Len(t, portions, 2)
	assert.True(t, portions[1].Equal(decimal.NewFromInt(25)), "got %s", portions[1])
	assert.True(t, portions[2].Equal(decimal.NewFromInt(75)), "got %s", portions[2])
}

func TestShareMapDistributeZeroTotalWeight(t *testing.T) {
	// an all-zero share map attributes the value to no account at all
	shares := domain.ShareMap{
		1: decimal.Zero,
		2: decimal.Zero,
	}
	portions := shares.Distribute(decimal.NewFromInt(100))
	assert.Empty(t, portions)

	assert.Empty(t, domain.ShareMap{}.Distribute(decimal.NewFromInt(100)))
}

func TestShareMapDistributeOmitsZeroWeightEntries(t *testing.T) {
	shares := domain.ShareMap{
		1: decimal.NewFromInt(2),
		2: decimal.Zero,
	}
	portions := shares.Distribute(decimal.NewFromInt(50))

	require.Len(t, portions, 1)
	assert.True(t, portions[1].Equal(decimal.NewFromInt(50)))
}

func TestTransactionValidateRejectsNegativeValue(t *testing.T) {
	txn := domain.Transaction{
		ID:    7,
		Value: decimal.NewFromInt(-10),
	}
	err := txn.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransactionHasAllTags(t *testing.T) {
	txn := domain.Transaction{Tags: []string{"food", "trip"}}

	assert.True(t, txn.HasAllTags(nil))
	assert.True(t, txn.HasAllTags([]string{"food"}))
	assert.True(t, txn.HasAllTags([]string{"food", "trip"}))
	assert.False(t, txn.HasAllTags([]string{"food", "rent"}))
}

func TestOccurrenceKeepsTemplateID(t *testing.T) {
	txn := domain.Transaction{ID: 42, BilledAt: domain.NewDate(2024, 1, 1)}
	occ := txn.OccurrenceAt(domain.NewDate(2024, 1, 8))

	assert.Equal(t, txn.ID, occ.ID)
	assert.Equal(t, "2024-01-08", occ.BilledAt.String())
	// the template is untouched
	assert.Equal(t, "2024-01-01", txn.BilledAt.String())
}
