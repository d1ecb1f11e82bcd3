package services

import (
	"context"

	"github.com/splittab/splittab_backend/internal/core/domain"
)

// ListTransactionsParams carries the display pipeline inputs: how to sort and
// what to filter by. Zero values mean "no filtering" and the default sort.
type ListTransactionsParams struct {
	SortMode   domain.TransactionSortMode
	SearchTerm string
	Tags       []string
}

// TransactionSvcFacade exposes the transaction display pipeline.
type TransactionSvcFacade interface {
	// ListTransactions expands recurring transactions into occurrences,
	// filters by tags and search term, and sorts stably by the requested
	// sort mode.
	ListTransactions(ctx context.Context, groupID domain.GroupID, params ListTransactionsParams) ([]domain.Transaction, error)
	// BalanceEffects returns the per-transaction, per-account balance
	// decomposition for every non-deleted transaction in the group.
	BalanceEffects(ctx context.Context, groupID domain.GroupID) (map[domain.TransactionID]domain.TransactionBalanceEffect, error)
}
