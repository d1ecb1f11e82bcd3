package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/splittab/splittab_backend/internal/core/domain"
	portsrepo "github.com/splittab/splittab_backend/internal/core/ports/repositories"
	portssvc "github.com/splittab/splittab_backend/internal/core/ports/services"
)

// groupService implements the GroupSvcFacade interface
type groupService struct {
	BaseService
	repo portsrepo.GroupReader
}

// NewGroupService creates a new group service backed by the given snapshot reader.
func NewGroupService(repo portsrepo.GroupReader) portssvc.GroupSvcFacade {
	return &groupService{repo: repo}
}

// Ensure groupService implements the GroupSvcFacade interface
var _ portssvc.GroupSvcFacade = (*groupService)(nil)

func (s *groupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.repo.ListGroups(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups")
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, groupID domain.GroupID) (*domain.Group, error) {
	group, err := s.repo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) ListAccounts(ctx context.Context, groupID domain.GroupID) ([]domain.Account, error) {
	accounts, err := s.repo.ListAccounts(ctx, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", "group_id", int(groupID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// ListTags aggregates the tags used anywhere in the group: on transactions
// and on clearing accounts. The result is de-duplicated and sorted
// case-insensitively.
func (s *groupService) ListTags(ctx context.Context, groupID domain.GroupID) ([]string, error) {
	transactions, err := s.repo.ListTransactions(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	accounts, err := s.repo.ListAccounts(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	collect := func(candidates []string) {
		for _, tag := range candidates {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	for _, txn := range transactions {
		if txn.Deleted {
			continue
		}
		collect(txn.Tags)
	}
	for _, account := range accounts {
		if account.Deleted || !account.IsClearing() {
			continue
		}
		collect(account.Tags)
	}

	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
	return tags, nil
}
