package services

import (
	"context"

	"github.com/splittab/splittab_backend/internal/core/domain"
)

// BalanceSvcFacade exposes the derived balance projections of a group.
// Results are memoized per snapshot; calling these repeatedly on unchanged
// state is cheap.
type BalanceSvcFacade interface {
	// AccountBalances computes the aggregate net balance of every account in
	// the group, clearing accounts settled.
	AccountBalances(ctx context.Context, groupID domain.GroupID) (domain.AccountBalanceMap, error)
	// AccountBalanceHistory computes the chronologically ordered balance
	// trajectory of one account, recurring transactions expanded per
	// occurrence.
	AccountBalanceHistory(ctx context.Context, groupID domain.GroupID, accountID domain.AccountID) ([]domain.BalanceHistoryEntry, error)
}
