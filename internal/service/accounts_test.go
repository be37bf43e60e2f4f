package service

import (
	"context"
	"testing"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo     *mocks.MockAccountRepo
	transactionRepo *mocks.MockTransactionRepo
	ticketRepo      *mocks.MockTicketRepo
	service         *AccountService
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.accountRepo = new(mocks.MockAccountRepo)
	s.transactionRepo = new(mocks.MockTransactionRepo)
	s.ticketRepo = new(mocks.MockTicketRepo)

	simple := decimal.NewFromInt(8)
	gold := decimal.NewFromInt(70)

	s.service = NewAccountService(
		&mocks.MockTransactor{},
		s.accountRepo,
		s.transactionRepo,
		s.ticketRepo,
		TicketPrices{Simple: &simple, Gold: &gold})
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) assertExpectations() {
	s.accountRepo.AssertExpectations(s.T())
	s.transactionRepo.AssertExpectations(s.T())
	s.ticketRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestDeposit() {
	defer s.assertExpectations()

	amount := decimal.NewFromInt(50)

	s.accountRepo.On("GetOwnedBy", mock.Anything, 1, 9).Return(&domain.Account{ID: 1, UserID: 9}, nil)
	s.accountRepo.On("Credit", mock.Anything, 1, amount).
		Return(&domain.Account{ID: 1, UserID: 9, Balance: amount}, nil)
	s.transactionRepo.On("Append", mock.Anything, mock.MatchedBy(func(tr *domain.Transaction) bool {
		return tr.Kind == domain.TransactionDeposit && tr.Amount.Equal(amount) && tr.AccountID == 1
	})).Return(nil)

	account, transaction, err := s.service.Deposit(context.Background(), 1, 9, amount)

	s.Require().NoError(err)
	s.True(account.Balance.Equal(amount))
	s.Equal(domain.TransactionDeposit, transaction.Kind)
	s.NotEmpty(transaction.Reference.String())
}

func (s *AccountServiceTestSuite) TestWithdrawInsufficientBalance() {
	defer s.assertExpectations()

	amount := decimal.NewFromInt(500)

	s.accountRepo.On("GetOwnedBy", mock.Anything, 1, 9).Return(&domain.Account{ID: 1, UserID: 9}, nil)
	s.accountRepo.On("Debit", mock.Anything, 1, amount).Return(nil, domain.ErrInsufficientBalance)

	account, transaction, err := s.service.Withdraw(context.Background(), 1, 9, amount)

	s.ErrorIs(err, domain.ErrInsufficientBalance)
	s.Nil(account)
	s.Nil(transaction)
	s.transactionRepo.AssertNotCalled(s.T(), "Append", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestWithdrawFromForeignAccount() {
	defer s.assertExpectations()

	s.accountRepo.On("GetOwnedBy", mock.Anything, 1, 9).Return(nil, domain.ErrAccountNotFound)

	_, _, err := s.service.Withdraw(context.Background(), 1, 9, decimal.NewFromInt(5))

	s.ErrorIs(err, domain.ErrAccountNotFound)
}

func (s *AccountServiceTestSuite) TestPurchaseTicket() {
	defer s.assertExpectations()

	price := decimal.NewFromInt(70)
	remaining := decimal.NewFromInt(30)

	s.accountRepo.On("GetOwnedBy", mock.Anything, 1, 9).
		Return(&domain.Account{ID: 1, UserID: 9, Balance: decimal.NewFromInt(100)}, nil)
	s.accountRepo.On("Debit", mock.Anything, 1, price).
		Return(&domain.Account{ID: 1, UserID: 9, Balance: remaining}, nil)
	s.transactionRepo.On("Append", mock.Anything, mock.MatchedBy(func(tr *domain.Transaction) bool {
		return tr.Kind == domain.TransactionPurchase && tr.Amount.Equal(price)
	})).Return(nil)
	s.ticketRepo.On("Create", mock.Anything, mock.MatchedBy(func(ticket *domain.Ticket) bool {
		return ticket.Kind == domain.TicketKindGold && ticket.RemainingUses == 10 && ticket.UserID == 9
	})).Return(nil)

	purchase, err := s.service.PurchaseTicket(context.Background(), PurchaseTicketParams{
		AccountID: 1,
		UserID:    9,
		Name:      "Gold pass",
		Kind:      domain.TicketKindGold,
	})

	s.Require().NoError(err)
	s.Equal("Gold pass", purchase.Ticket.Name)
	s.True(purchase.Account.Balance.Equal(remaining))
	s.True(purchase.Transaction.Amount.Equal(price))
}

func (s *AccountServiceTestSuite) TestPurchaseTicketInsufficientBalance() {
	defer s.assertExpectations()

	price := decimal.NewFromInt(8)

	s.accountRepo.On("GetOwnedBy", mock.Anything, 1, 9).Return(&domain.Account{ID: 1, UserID: 9}, nil)
	s.accountRepo.On("Debit", mock.Anything, 1, price).Return(nil, domain.ErrInsufficientBalance)

	purchase, err := s.service.PurchaseTicket(context.Background(), PurchaseTicketParams{
		AccountID: 1,
		UserID:    9,
		Name:      "Single",
		Kind:      domain.TicketKindSimple,
	})

	s.ErrorIs(err, domain.ErrInsufficientBalance)
	s.Nil(purchase)
	s.ticketRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func TestPurchaseTicketWithoutPrice(t *testing.T) {
	accounts := new(mocks.MockAccountRepo)
	service := NewAccountService(
		&mocks.MockTransactor{},
		accounts,
		new(mocks.MockTransactionRepo),
		new(mocks.MockTicketRepo),
		TicketPrices{})

	_, err := service.PurchaseTicket(context.Background(), PurchaseTicketParams{
		AccountID: 1,
		UserID:    9,
		Kind:      domain.TicketKindSimple,
	})

	assert.ErrorIs(t, err, domain.ErrPriceNotConfigured)
	accounts.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
}

func TestTicketPricesFor(t *testing.T) {
	gold := decimal.RequireFromString("75.50")
	prices := TicketPrices{Gold: &gold}

	price, err := prices.For(domain.TicketKindGold)
	require.NoError(t, err)
	assert.True(t, price.Equal(gold))

	_, err = prices.For(domain.TicketKindSimple)
	assert.ErrorIs(t, err, domain.ErrPriceNotConfigured)

	_, err = prices.For(domain.TicketKind("platinum"))
	assert.ErrorIs(t, err, domain.ErrPriceNotConfigured)
}
