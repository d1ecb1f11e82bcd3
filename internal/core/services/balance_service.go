package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/splittab/splittab_backend/internal/apperrors"
	"github.com/splittab/splittab_backend/internal/core/domain"
	portsrepo "github.com/splittab/splittab_backend/internal/core/ports/repositories"
	portssvc "github.com/splittab/splittab_backend/internal/core/ports/services"
	"github.com/splittab/splittab_backend/internal/utils/accounting"
	"github.com/splittab/splittab_backend/internal/utils/recurrence"
)

// balanceService implements the BalanceSvcFacade interface
type balanceService struct {
	BaseService
	repo     portsrepo.GroupReader
	balances *memoCache[domain.AccountBalanceMap]
	now      func() time.Time
}

// BalanceServiceOption is a functional option for configuring the balance service
type BalanceServiceOption func(*balanceService)

// WithBalanceCacheSize overrides the memoization cache capacity.
func WithBalanceCacheSize(size int) BalanceServiceOption {
	return func(s *balanceService) {
		s.balances = newMemoCache[domain.AccountBalanceMap](size)
	}
}

// WithBalanceClock overrides the "now" cutoff used for recurrence expansion.
// Tests use this to pin time.
func WithBalanceClock(now func() time.Time) BalanceServiceOption {
	return func(s *balanceService) {
		s.now = now
	}
}

// NewBalanceService creates a new balance service with the provided options
func NewBalanceService(repo portsrepo.GroupReader, options ...BalanceServiceOption) portssvc.BalanceSvcFacade {
	svc := &balanceService{
		repo:     repo,
		balances: newMemoCache[domain.AccountBalanceMap](defaultMemoCacheSize),
		now:      time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure balanceService implements the BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// AccountBalances computes (or returns the memoized) aggregate balance of
// every account in the group.
func (s *balanceService) AccountBalances(ctx context.Context, groupID domain.GroupID) (domain.AccountBalanceMap, error) {
	accounts, transactions, positions, err := s.loadSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	key := snapshotFingerprint(groupID, accounts, transactions, positions)
	if cached, ok := s.balances.get(key); ok {
		return cached, nil
	}

	start := time.Now()
	balances := accounting.ComputeAccountBalances(accounts, transactions, positions)
	s.LogDebug(ctx, "Computed account balances",
		"group_id", int(groupID),
		"account_count", len(accounts),
		"transaction_count", len(transactions),
		"duration_ms", time.Since(start).Milliseconds())

	s.balances.add(key, balances)
	return balances, nil
}

// AccountBalanceHistory computes the ordered balance trajectory of one
// account, recurring transactions expanded into one entry per occurrence and
// clearing distributions threaded in at their date.
func (s *balanceService) AccountBalanceHistory(ctx context.Context, groupID domain.GroupID, accountID domain.AccountID) ([]domain.BalanceHistoryEntry, error) {
	accounts, transactions, positions, err := s.loadSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	found := false
	clearingAccounts := make([]domain.Account, 0)
	for _, account := range accounts {
		if account.ID == accountID {
			found = true
		}
		if account.IsClearing() && !account.Deleted {
			clearingAccounts = append(clearingAccounts, account)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: account %d in group %d", apperrors.ErrNotFound, accountID, groupID)
	}

	balances, err := s.AccountBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}

	effects := make(map[domain.TransactionID]domain.TransactionBalanceEffect, len(transactions))
	for _, txn := range transactions {
		if txn.Deleted {
			continue
		}
		effects[txn.ID] = accounting.ComputeTransactionBalanceEffect(txn, positions[txn.ID])
		s.warnOnMalformedRepeat(ctx, txn)
	}

	history := accounting.ComputeAccountBalanceHistory(accountID, clearingAccounts, balances, transactions, effects, s.now())
	return history, nil
}

// warnOnMalformedRepeat surfaces recurrence parse failures in the logs. The
// computation itself degrades the transaction to its anchor date and carries on.
func (s *balanceService) warnOnMalformedRepeat(ctx context.Context, txn domain.Transaction) {
	if txn.Repeat == "" {
		return
	}
	if _, err := recurrence.Parse(txn.Repeat); err != nil && errors.Is(err, apperrors.ErrRecurrenceParse) {
		s.LogWarn(ctx, "Malformed recurrence rule, treating transaction as non-recurring",
			"transaction_id", int(txn.ID),
			"repeat", txn.Repeat,
			"error", err.Error())
	}
}

func (s *balanceService) loadSnapshot(ctx context.Context, groupID domain.GroupID) ([]domain.Account, []domain.Transaction, map[domain.TransactionID][]domain.Position, error) {
	accounts, err := s.repo.ListAccounts(ctx, groupID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	transactions, err := s.repo.ListTransactions(ctx, groupID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	positions, err := s.repo.ListPositionsByTransaction(ctx, groupID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return accounts, transactions, positions, nil
}
