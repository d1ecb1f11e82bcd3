package handlers_test

import (
	"context"

	"github.com/splittab/splittab_backend/internal/core/domain"
	portssvc "github.com/splittab/splittab_backend/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// MockGroupService is a mock implementation of the GroupSvcFacade interface.
type MockGroupService struct {
	mock.Mock
}

var _ portssvc.GroupSvcFacade = (*MockGroupService)(nil)

func (m *MockGroupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Group), args.Error(1)
}

func (m *MockGroupService) GetGroupByID(ctx context.Context, groupID domain.GroupID) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupService) ListAccounts(ctx context.Context, groupID domain.GroupID) ([]domain.Account, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockGroupService) ListTags(ctx context.Context, groupID domain.GroupID) ([]string, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockBalanceService is a mock implementation of the BalanceSvcFacade interface.
type MockBalanceService struct {
	mock.Mock
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

func (m *MockBalanceService) AccountBalances(ctx context.Context, groupID domain.GroupID) (domain.AccountBalanceMap, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.AccountBalanceMap), args.Error(1)
}

func (m *MockBalanceService) AccountBalanceHistory(ctx context.Context, groupID domain.GroupID, accountID domain.AccountID) ([]domain.BalanceHistoryEntry, error) {
	args := m.Called(ctx, groupID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceHistoryEntry), args.Error(1)
}

// MockTransactionService is a mock implementation of the TransactionSvcFacade interface.
type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) ListTransactions(ctx context.Context, groupID domain.GroupID, params portssvc.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, groupID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) BalanceEffects(ctx context.Context, groupID domain.GroupID) (map[domain.TransactionID]domain.TransactionBalanceEffect, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.TransactionID]domain.TransactionBalanceEffect), args.Error(1)
}
