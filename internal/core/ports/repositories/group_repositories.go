// Package repositories defines the persistence-side interfaces (driven
// ports) consumed by the core services.
package repositories

import (
	"context"

	"github.com/splittab/splittab_backend/internal/core/domain"
)

// GroupReader provides read access to one consistent group snapshot.
// Implementations must hand out copies (or otherwise immutable views) so a
// computation never observes a torn mix of before/after state.
type GroupReader interface {
	ListGroups(ctx context.Context) ([]domain.Group, error)
	FindGroupByID(ctx context.Context, groupID domain.GroupID) (*domain.Group, error)
	ListAccounts(ctx context.Context, groupID domain.GroupID) ([]domain.Account, error)
	ListTransactions(ctx context.Context, groupID domain.GroupID) ([]domain.Transaction, error)
	ListPositionsByTransaction(ctx context.Context, groupID domain.GroupID) (map[domain.TransactionID][]domain.Position, error)
}
