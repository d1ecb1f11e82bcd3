package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/splittab/splittab_backend/internal/core/domain"
	portsrepo "github.com/splittab/splittab_backend/internal/core/ports/repositories"
	portssvc "github.com/splittab/splittab_backend/internal/core/ports/services"
	"github.com/splittab/splittab_backend/internal/utils/accounting"
	"github.com/splittab/splittab_backend/internal/utils/recurrence"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	repo    portsrepo.GroupReader
	sorted  *memoCache[[]domain.Transaction]
	effects *memoCache[map[domain.TransactionID]domain.TransactionBalanceEffect]
	now     func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionCacheSize overrides the memoization cache capacities.
func WithTransactionCacheSize(size int) TransactionServiceOption {
	return func(s *transactionService) {
		s.sorted = newMemoCache[[]domain.Transaction](size)
		s.effects = newMemoCache[map[domain.TransactionID]domain.TransactionBalanceEffect](size)
	}
}

// WithTransactionClock overrides the "now" cutoff used for recurrence
// expansion. Tests use this to pin time.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.GroupReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		repo:    repo,
		sorted:  newMemoCache[[]domain.Transaction](defaultMemoCacheSize),
		effects: newMemoCache[map[domain.TransactionID]domain.TransactionBalanceEffect](defaultMemoCacheSize),
		now:     time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// BalanceEffects computes (or returns the memoized) per-transaction balance
// decomposition for the group.
func (s *transactionService) BalanceEffects(ctx context.Context, groupID domain.GroupID) (map[domain.TransactionID]domain.TransactionBalanceEffect, error) {
	accounts, transactions, positions, err := s.loadSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	key := snapshotFingerprint(groupID, accounts, transactions, positions)
	if cached, ok := s.effects.get(key); ok {
		return cached, nil
	}

	effects := make(map[domain.TransactionID]domain.TransactionBalanceEffect, len(transactions))
	for _, txn := range transactions {
		if txn.Deleted {
			continue
		}
		effects[txn.ID] = accounting.ComputeTransactionBalanceEffect(txn, positions[txn.ID])
	}

	s.effects.add(key, effects)
	return effects, nil
}

// ListTransactions materializes the displayed transaction list: recurring
// transactions expanded into occurrences up to now, filtered by required tags
// and search term, stably sorted by the requested sort mode.
func (s *transactionService) ListTransactions(ctx context.Context, groupID domain.GroupID, params portssvc.ListTransactionsParams) ([]domain.Transaction, error) {
	accounts, transactions, positions, err := s.loadSnapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	base := snapshotFingerprint(groupID, accounts, transactions, positions)
	key := paramsFingerprint(base, params.SortMode, params.SearchTerm, params.Tags)
	if cached, ok := s.sorted.get(key); ok {
		return cached, nil
	}

	effects, err := s.BalanceEffects(ctx, groupID)
	if err != nil {
		return nil, err
	}

	accountNames := make(map[domain.AccountID]string, len(accounts))
	for _, account := range accounts {
		accountNames[account.ID] = account.Name
	}

	start := time.Now()
	now := s.now()

	occurrences := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Deleted {
			continue
		}
		if txn.Repeat == "" {
			occurrences = append(occurrences, txn)
			continue
		}
		dates, expandErr := recurrence.Expand(txn.Repeat, txn.BilledAt.Time, now)
		if expandErr != nil {
			s.LogWarn(ctx, "Malformed recurrence rule, treating transaction as non-recurring",
				"transaction_id", int(txn.ID),
				"repeat", txn.Repeat,
				"error", expandErr.Error())
		}
		for _, date := range dates {
			occurrences = append(occurrences, txn.OccurrenceAt(domain.DateOf(date)))
		}
	}

	filtered := occurrences[:0]
	for _, txn := range occurrences {
		if matchesFilter(txn, params, effects[txn.ID], accountNames) {
			filtered = append(filtered, txn)
		}
	}

	compare := domain.GetTransactionSortFunc(params.SortMode)
	sort.SliceStable(filtered, func(i, j int) bool {
		return compare(&filtered[i], &filtered[j]) < 0
	})

	s.LogDebug(ctx, "Materialized transaction list",
		"group_id", int(groupID),
		"occurrence_count", len(filtered),
		"duration_ms", time.Since(start).Milliseconds())

	s.sorted.add(key, filtered)
	return filtered, nil
}

// matchesFilter retains an occurrence when all required tags are present and
// the search term matches the name, description, billed or changed date,
// numeric value, or the name of any account in its balance effect. The
// search is case-insensitive.
func matchesFilter(
	txn domain.Transaction,
	params portssvc.ListTransactionsParams,
	effect domain.TransactionBalanceEffect,
	accountNames map[domain.AccountID]string,
) bool {
	if !txn.HasAllTags(params.Tags) {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(params.SearchTerm))
	if term == "" {
		return true
	}

	candidates := []string{
		txn.Name,
		txn.Description,
		txn.BilledAt.String(),
		txn.LastChanged.Format(time.RFC3339),
		txn.Value.String(),
	}
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), term) {
			return true
		}
	}
	for accountID := range effect {
		if name, ok := accountNames[accountID]; ok && strings.Contains(strings.ToLower(name), term) {
			return true
		}
	}
	return false
}

func (s *transactionService) loadSnapshot(ctx context.Context, groupID domain.GroupID) ([]domain.Account, []domain.Transaction, map[domain.TransactionID][]domain.Position, error) {
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
