package services_test

import (
	"context"

	"github.com/splittab/splittab_backend/internal/core/domain"
	portsrepo "github.com/splittab/splittab_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockGroupReader is a mock implementation of the GroupReader port.
type MockGroupReader struct {
	mock.Mock
}

var _ portsrepo.GroupReader = (*MockGroupReader)(nil)

func (m *MockGroupReader) ListGroups(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupReader) FindGroupByID(ctx context.Context, groupID domain.GroupID) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupReader) ListAccounts(ctx context.Context, groupID domain.GroupID) ([]domain.Account, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockGroupReader) ListTransactions(ctx context.Context, groupID domain.GroupID) ([]domain.Transaction, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockGroupReader) ListPositionsByTransaction(ctx context.Context, groupID domain.GroupID) (map[domain.TransactionID][]domain.Position, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.TransactionID][]domain.Position), args.Error(1)
}
