package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		db: db,
	}
}

func (p *PostgresAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	return conn(ctx, p.db).QueryRow(
		ctx,
		query,
		account.UserID,
		account.Balance.String()).Scan(&account.ID, &account.CreatedAt)
}

func (p *PostgresAccountRepository) GetOwnedBy(ctx context.Context, accountID, userID int) (*domain.Account, error) {
	query := `
		SELECT id, user_id, balance::text, created_at
		FROM accounts
		WHERE id = $1 AND user_id = $2
	`

	return p.get(ctx, query, accountID, userID)
}

func (p *PostgresAccountRepository) GetByUser(ctx context.Context, userID int) (*domain.Account, error) {
	query := `
		SELECT id, user_id, balance::text, created_at
		FROM accounts
		WHERE user_id = $1
	`

	return p.get(ctx, query, userID)
}

func (p *PostgresAccountRepository) get(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	account, err := scanAccount(conn(ctx, p.db).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

func (p *PostgresAccountRepository) Credit(
	ctx context.Context,
	accountID int,
	amount decimal.Decimal) (*domain.Account, error) {

	query := `
		UPDATE accounts
		SET balance = balance + $1::numeric
		WHERE id = $2
		RETURNING id, user_id, balance::text, created_at
	`

	account, err := scanAccount(conn(ctx, p.db).QueryRow(ctx, query, amount.String(), accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

func (p *PostgresAccountRepository) Debit(
	ctx context.Context,
	accountID int,
	amount decimal.Decimal) (*domain.Account, error) {

	query := `
		UPDATE accounts
		SET balance = balance - $1::numeric
		WHERE id = $2 AND balance >= $1::numeric
		RETURNING id, user_id, balance::text, created_at
	`

	account, err := scanAccount(conn(ctx, p.db).QueryRow(ctx, query, amount.String(), accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientBalance
		}

		return nil, err
	}

	return account, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account domain.Account
		balance string
	)

	err := row.Scan(&account.ID, &account.UserID, &balance, &account.CreatedAt)
	if err != nil {
		return nil, err
	}

	account.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}

	return &account, nil
}
