package services_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/splittab/splittab_backend/internal/core/domain"
	portssvc "github.com/splittab/splittab_backend/internal/core/ports/services"
	"github.com/splittab/splittab_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestListTransactionsExpandsRecurrences(t *testing.T) {
	repo := new(MockGroupReader)
	recurring := splitPurchase(1, 100, domain.NewDate(2024, time.January, 1))
	recurring.Name = "Rent"
	recurring.Repeat = "FREQ=WEEKLY"
	oneOff := splitPurchase(2, 40, domain.NewDate(2024, time.January, 10))
	oneOff.Name = "Groceries"
	stubSnapshot(repo, testAccounts(), []domain.Transaction{recurring, oneOff})
	now := time.Date(2024, time.January, 22, 12, 0, 0, 0, time.UTC)
	svc := services.NewTransactionService(repo, services.WithTransactionClock(fixedClock(now)))

	listed, err := svc.ListTransactions(context.Background(), testGroupID, portssvc.ListTransactionsParams{})

	require.NoError(t, err)
	require.Len(t, listed, 5)
	occurrenceDates := make([]string, 0, len(listed))
	for _, txn := range listed {
		if txn.ID == 1 {
			occurrenceDates = append(occurrenceDates, txn.BilledAt.String())
			assert.Equal(t, "Rent", txn.Name)
		}
	}
	assert.ElementsMatch(t,
		[]string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"},
		occurrenceDates)
}

func TestListTransactionsMalformedRepeatDegradesToSingleOccurrence(t *testing.T) {
	repo := new(MockGroupReader)
	broken := splitPurchase(1, 100, domain.NewDate(2024, time.January, 1))
	broken.Repeat = "garbage"
	stubSnapshot(repo, testAccounts(), []domain.Transaction{broken})
	svc := services.NewTransactionService(repo,
		services.WithTransactionClock(fixedClock(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))))

	listed, err := svc.ListTransactions(context.Background(), testGroupID, portssvc.ListTransactionsParams{})

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "2024-01-01", listed[0].BilledAt.String())
}

func TestListTransactionsTagFilterIsConjunctive(t *testing.T) {
	repo := new(MockGroupReader)
	both := splitPurchase(1, 10, domain.NewDate(2024, time.January, 1))
	both.Tags = []string{"food", "trip"}
	foodOnly := splitPurchase(2, 20, domain.NewDate(2024, time.January, 2))
	foodOnly.Tags = []string{"food"}
	untagged := splitPurchase(3, 30, domain.NewDate(2024, time.January, 3))
	stubSnapshot(repo, testAccounts(), []domain.Transaction{both, foodOnly, untagged})
	svc := services.NewTransactionService(repo)

	listed, err := svc.ListTransactions(context.Background(), testGroupID,
		portssvc.ListTransactionsParams{Tags: []string{"food", "trip"}})

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.TransactionID(1), listed[0].ID)
}

func TestListTransactionsSearchMatchesAccountNames(t *testing.T) {
	repo := new(MockGroupReader)
	purchase := splitPurchase(1, 10, domain.NewDate(2024, time.January, 1))
	purchase.Name = "Cinema"
	other := domain.Transaction{
		ID:             2,
		GroupID:        testGroupID,
		Type:           domain.TransactionTypePurchase,
		Name:           "Snacks",
		Value:          decimal.NewFromInt(5),
		BilledAt:       domain.NewDate(2024, time.January, 2),
		CreditorShares: weights(map[domain.AccountID]int64{2: 1}),
		DebitorShares:  weights(map[domain.AccountID]int64{2: 1}),
	}
	stubSnapshot(repo, testAccounts(), []domain.Transaction{purchase, other})
	svc := services.NewTransactionService(repo)

	listed, err := svc.ListTransactions(context.Background(), testGroupID,
		portssvc.ListTransactionsParams{SearchTerm: "alice"})

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.TransactionID(1), listed[0].ID)
}

func TestListTransactionsSearchMatchesNameCaseInsensitively(t *testing.T) {
	repo := new(MockGroupReader)
	purchase := splitPurchase(1, 10, domain.NewDate(2024, time.January, 1))
	purchase.Name = "Weekly Groceries"
	other := splitPurchase(2, 20, domain.NewDate(2024, time.January, 2))
	other.Name = "Rent"
	stubSnapshot(repo, testAccounts(), []domain.Transaction{purchase, other})
	svc := services.NewTransactionService(repo)

	listed, err := svc.ListTransactions(context.Background(), testGroupID,
		portssvc.ListTransactionsParams{SearchTerm: "GROCER"})

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.TransactionID(1), listed[0].ID)
}

func TestListTransactionsSortsByValueDescending(t *testing.T) {
	repo := new(MockGroupReader)
	small := splitPurchase(1, 10, domain.NewDate(2024, time.March, 1))
	big := splitPurchase(2, 90, domain.NewDate(2024, time.January, 1))
	stubSnapshot(repo, testAccounts(), []domain.Transaction{small, big})
	svc := services.NewTransactionService(repo)

	listed, err := svc.ListTransactions(context.Background(), testGroupID,
		portssvc.ListTransactionsParams{SortMode: domain.SortByValue})

	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, domain.TransactionID(2), listed[0].ID)
	assert.Equal(t, domain.TransactionID(1), listed[1].ID)
}

func TestListTransactionsDefaultSortNewestBilledFirst(t *testing.T) {
	repo := new(MockGroupReader)
	older := splitPurchase(1, 10, domain.NewDate(2024, time.January, 1))
	newer := splitPurchase(2, 10, domain.NewDate(2024, time.March, 1))
	stubSnapshot(repo, testAccounts(), []domain.Transaction{older, newer})
	svc := services.NewTransactionService(repo)

	listed, err := svc.ListTransactions(context.Background(), testGroupID, portssvc.ListTransactionsParams{})

	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, domain.TransactionID(2), listed[0].ID)
}

func TestListTransactionsMemoizedPerSnapshotAndParams(t *testing.T) {
	repo := new(MockGroupReader)
	stubSnapshot(repo, testAccounts(), []domain.Transaction{
		splitPurchase(1, 10, domain.NewDate(2024, time.January, 1)),
	})
	svc := services.NewTransactionService(repo)
	params := portssvc.ListTransactionsParams{SortMode: domain.SortByValue}

	first, err := svc.ListTransactions(context.Background(), testGroupID, params)
	require.NoError(t, err)
	second, err := svc.ListTransactions(context.Background(), testGroupID, params)
	require.NoError(t, err)

	assert.Equal(t,
		reflect.ValueOf(first).Pointer(),
		reflect.ValueOf(second).Pointer(),
		"identical snapshot and params should be served from cache")

	// a different sort mode is a different cache entry
	third, err := svc.ListTransactions(context.Background(), testGroupID,
		portssvc.ListTransactionsParams{SortMode: domain.SortByName})
	require.NoError(t, err)
	assert.NotEqual(t,
		reflect.ValueOf(first).Pointer(),
		reflect.ValueOf(third).Pointer())
}

func TestBalanceEffectsSkipsDeletedAndMemoizes(t *testing.T) {
	repo := new(MockGroupReader)
	live := splitPurchase(1, 100, domain.NewDate(2024, time.January, 1))
	dead := splitPurchase(2, 50, domain.NewDate(2024, time.January, 2))
	dead.Deleted = true
	stubSnapshot(repo, testAccounts(), []domain.Transaction{live, dead})
	svc := services.NewTransactionService(repo)

	effects, err := svc.BalanceEffects(context.Background(), testGroupID)

	require.NoError(t, err)
	require.Len(t, effects, 1)
	assert.True(t, effects[1][1].Total.Equal(decimal.NewFromInt(50)))

	again, err := svc.BalanceEffects(context.Background(), testGroupID)
	require.NoError(t, err)
	assert.Equal(t,
		reflect.ValueOf(effects).Pointer(),
		reflect.ValueOf(again).Pointer())
}
