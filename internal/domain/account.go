package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID        int
	UserID    int
	Balance   decimal.Decimal
	CreatedAt time.Time
}

type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "deposit"
	TransactionWithdrawal TransactionKind = "withdrawal"
	TransactionPurchase   TransactionKind = "purchase"
)

type Transaction struct {
	ID        int
	Reference uuid.UUID
	AccountID int
	Amount    decimal.Decimal
	Kind      TransactionKind
	CreatedAt time.Time
}

func NewTransaction(accountID int, amount decimal.Decimal, kind TransactionKind) *Transaction {
	return &Transaction{
		Reference: uuid.New(),
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
	}
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	// GetOwnedBy only finds accounts belonging to userID.
	GetOwnedBy(ctx context.Context, accountID, userID int) (*Account, error)
	GetByUser(ctx context.Context, userID int) (*Account, error)
	Credit(ctx context.Context, accountID int, amount decimal.Decimal) (*Account, error)
	// Debit fails with ErrInsufficientBalance instead of going below zero.
	Debit(ctx context.Context, accountID int, amount decimal.Decimal) (*Account, error)
}

type TransactionRepository interface {
	Append(ctx context.Context, transaction *Transaction) error
	GetAllByAccount(ctx context.Context, accountID int, pagination Pagination) ([]Transaction, *Metadata, error)
}
