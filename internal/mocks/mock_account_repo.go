package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockAccountRepo struct {
	mock.Mock
	domain.AccountRepository
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepo) GetOwnedBy(ctx context.Context, accountID, userID int) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) GetByUser(ctx context.Context, userID int) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) Credit(ctx context.Context, accountID int, amount decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) Debit(ctx context.Context, accountID int, amount decimal.Decimal) (*domain.Account, error) {
	args := m.Called(ctx, accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockTransactionRepo struct {
	mock.Mock
	domain.TransactionRepository
}

func (m *MockTransactionRepo) Append(ctx context.Context, transaction *domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepo) GetAllByAccount(
	ctx context.Context,
	accountID int,
	pagination domain.Pagination) ([]domain.Transaction, *domain.Metadata, error) {

	args := m.Called(ctx, accountID, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(*domain.Metadata), args.Error(2)
}
