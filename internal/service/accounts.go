package service

import (
	"context"

	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

// TicketPrices holds the configured price of each ticket kind. A nil price
// means the kind cannot be sold.
type TicketPrices struct {
	Simple *decimal.Decimal
	Gold   *decimal.Decimal
}

func (p TicketPrices) For(kind domain.TicketKind) (decimal.Decimal, error) {
	var price *decimal.Decimal

	switch kind {
	case domain.TicketKindSimple:
		price = p.Simple
	case domain.TicketKindGold:
		price = p.Gold
	}

	if price == nil {
		return decimal.Zero, domain.ErrPriceNotConfigured
	}

	return *price, nil
}

type AccountService struct {
	tx           domain.Transactor
	accounts     domain.AccountRepository
	transactions domain.TransactionRepository
	tickets      domain.TicketRepository
	prices       TicketPrices
}

func NewAccountService(
	tx domain.Transactor,
	accounts domain.AccountRepository,
	transactions domain.TransactionRepository,
	tickets domain.TicketRepository,
	prices TicketPrices) *AccountService {

	return &AccountService{
		tx:           tx,
		accounts:     accounts,
		transactions: transactions,
		tickets:      tickets,
		prices:       prices,
	}
}

func (s *AccountService) Get(ctx context.Context, accountID, userID int) (*domain.Account, error) {
	return s.accounts.GetOwnedBy(ctx, accountID, userID)
}

func (s *AccountService) Transactions(
	ctx context.Context,
	accountID, userID int,
	pagination domain.Pagination) ([]domain.Transaction, *domain.Metadata, error) {

	_, err := s.accounts.GetOwnedBy(ctx, accountID, userID)
	if err != nil {
		return nil, nil, err
	}

	return s.transactions.GetAllByAccount(ctx, accountID, pagination)
}

func (s *AccountService) Deposit(
	ctx context.Context,
	accountID, userID int,
	amount decimal.Decimal) (*domain.Account, *domain.Transaction, error) {

	return s.move(ctx, accountID, userID, amount, domain.TransactionDeposit)
}

func (s *AccountService) Withdraw(
	ctx context.Context,
	accountID, userID int,
	amount decimal.Decimal) (*domain.Account, *domain.Transaction, error) {

	return s.move(ctx, accountID, userID, amount, domain.TransactionWithdrawal)
}

func (s *AccountService) move(
	ctx context.Context,
	accountID, userID int,
	amount decimal.Decimal,
	kind domain.TransactionKind) (*domain.Account, *domain.Transaction, error) {

	var account *domain.Account
	transaction := domain.NewTransaction(accountID, amount, kind)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.accounts.GetOwnedBy(ctx, accountID, userID)
		if err != nil {
			return err
		}

		if kind == domain.TransactionDeposit {
			account, err = s.accounts.Credit(ctx, accountID, amount)
		} else {
			account, err = s.accounts.Debit(ctx, accountID, amount)
		}
		if err != nil {
			return err
		}

		return s.transactions.Append(ctx, transaction)
	})
	if err != nil {
		return nil, nil, err
	}

	return account, transaction, nil
}

type PurchaseTicketParams struct {
	AccountID int
	UserID    int
	Name      string
	Kind      domain.TicketKind
}

type Purchase struct {
	Ticket      domain.Ticket
	Account     domain.Account
	Transaction domain.Transaction
}

// PurchaseTicket debits the ticket price from the caller's account and issues
// the ticket in the same transaction.
func (s *AccountService) PurchaseTicket(ctx context.Context, params PurchaseTicketParams) (*Purchase, error) {
	price, err := s.prices.For(params.Kind)
	if err != nil {
		return nil, err
	}

	ticket := domain.NewTicket(params.Name, params.Kind, params.UserID)
	transaction := domain.NewTransaction(params.AccountID, price, domain.TransactionPurchase)

	var account *domain.Account

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.accounts.GetOwnedBy(ctx, params.AccountID, params.UserID)
		if err != nil {
			return err
		}

		account, err = s.accounts.Debit(ctx, params.AccountID, price)
		if err != nil {
			return err
		}

		if err := s.transactions.Append(ctx, transaction); err != nil {
			return err
		}

		return s.tickets.Create(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}

	return &Purchase{
		Ticket:      *ticket,
		Account:     *account,
		Transaction: *transaction,
	}, nil
}
