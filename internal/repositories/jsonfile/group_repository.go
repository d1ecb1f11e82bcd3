// Package jsonfile provides a read-only GroupReader backed by a JSON
// snapshot file. The snapshot is loaded once at startup; every read hands out
// copies so computations always observe one consistent, unchanging state.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/splittab/splittab_backend/internal/apperrors"
	"github.com/splittab/splittab_backend/internal/core/domain"
	portsrepo "github.com/splittab/splittab_backend/internal/core/ports/repositories"
)

// snapshotFile is the on-disk shape: one record per group with its accounts,
// transactions and positions inline.
type snapshotFile struct {
	Groups []groupRecord `json:"groups"`
}

type groupRecord struct {
	Group        domain.Group         `json:"group"`
	Accounts     []domain.Account     `json:"accounts"`
	Transactions []domain.Transaction `json:"transactions"`
	Positions    []domain.Position    `json:"positions"`
}

// GroupRepository serves group snapshots loaded from a JSON file.
type GroupRepository struct {
	mu     sync.RWMutex
	groups map[domain.GroupID]groupRecord
	order  []domain.GroupID
}

// Ensure GroupRepository implements the GroupReader interface
var _ portsrepo.GroupReader = (*GroupRepository)(nil)

// NewGroupRepository loads the snapshot file at path and validates the share
// maps it contains. Malformed share weights are rejected here, before any
// balance computation can see them.
func NewGroupRepository(path string) (*GroupRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}

	repo := &GroupRepository{
		groups: make(map[domain.GroupID]groupRecord, len(file.Groups)),
		order:  make([]domain.GroupID, 0, len(file.Groups)),
	}
	for _, record := range file.Groups {
		if err := validateRecord(record); err != nil {
			return nil, fmt.Errorf("invalid snapshot for group %d: %w", record.Group.ID, err)
		}
		repo.groups[record.Group.ID] = record
		repo.order = append(repo.order, record.Group.ID)
	}
	return repo, nil
}

func validateRecord(record groupRecord) error {
	for _, account := range record.Accounts {
		if err := account.ClearingShares.Validate(); err != nil {
			return fmt.Errorf("account %d: %w", account.ID, err)
		}
	}
	for _, txn := range record.Transactions {
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", txn.ID, err)
		}
	}
	for _, pos := range record.Positions {
		if err := pos.Shares.Validate(); err != nil {
			return fmt.Errorf("position %d: %w", pos.ID, err)
		}
	}
	return nil
}

// ListGroups returns all groups in snapshot order.
func (r *GroupRepository) ListGroups(ctx context.Context) ([]domain.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([]domain.Group, 0, len(r.order))
	for _, id := range r.order {
		groups = append(groups, r.groups[id].Group)
	}
	return groups, nil
}

// FindGroupByID returns one group or apperrors.ErrNotFound.
func (r *GroupRepository) FindGroupByID(ctx context.Context, groupID domain.GroupID) (*domain.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: group %d", apperrors.ErrNotFound, groupID)
	}
	group := record.Group
	return &group, nil
}

// ListAccounts returns copies of the group's accounts.
func (r *GroupRepository) ListAccounts(ctx context.Context, groupID domain.GroupID) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: group %d", apperrors.ErrNotFound, groupID)
	}
	accounts := make([]domain.Account, len(record.Accounts))
	copy(accounts, record.Accounts)
	return accounts, nil
}

// ListTransactions returns copies of the group's transactions.
func (r *GroupRepository) ListTransactions(ctx context.Context, groupID domain.GroupID) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: group %d", apperrors.ErrNotFound, groupID)
	}
	transactions := make([]domain.Transaction, len(record.Transactions))
	copy(transactions, record.Transactions)
	return transactions, nil
}

// ListPositionsByTransaction returns the group's positions grouped by their
// transaction.
func (r *GroupRepository) ListPositionsByTransaction(ctx context.Context, groupID domain.GroupID) (map[domain.TransactionID][]domain.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("%w: group %d", apperrors.ErrNotFound, groupID)
	}
	positions := make(map[domain.TransactionID][]domain.Position)
	for _, pos := range record.Positions {
		positions[pos.TransactionID] = append(positions[pos.TransactionID], pos)
	}
	return positions, nil
}
