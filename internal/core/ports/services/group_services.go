package services

import (
	"context"

	"github.com/splittab/splittab_backend/internal/core/domain"
)

// GroupSvcFacade exposes read access to groups and their accounts.
type GroupSvcFacade interface {
	ListGroups(ctx context.Context) ([]domain.Group, error)
	GetGroupByID(ctx context.Context, groupID domain.GroupID) (*domain.Group, error)
	ListAccounts(ctx context.Context, groupID domain.GroupID) ([]domain.Account, error)
	// ListTags returns the sorted, de-duplicated union of all transaction
	// tags and clearing account tags in the group.
	ListTags(ctx context.Context, groupID domain.GroupID) ([]string, error)
}
