package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresTransactionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTransactionRepository(db *pgxpool.Pool) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{
		db: db,
	}
}

func (p *PostgresTransactionRepository) Append(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (reference, account_id, amount, kind)
		VALUES ($1, $2, $3::numeric, $4)
		RETURNING id, created_at
	`

	return conn(ctx, p.db).QueryRow(
		ctx,
		query,
		transaction.Reference,
		transaction.AccountID,
		transaction.Amount.String(),
		transaction.Kind).Scan(&transaction.ID, &transaction.CreatedAt)
}

func (p *PostgresTransactionRepository) GetAllByAccount(
	ctx context.Context,
	accountID int,
	pagination domain.Pagination) ([]domain.Transaction, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, reference, account_id, amount::text, kind, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn(ctx, p.db).Query(ctx, query, accountID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	transactions := make([]domain.Transaction, 0)

	for rows.Next() {
		var (
			transaction domain.Transaction
			amount      string
		)

		err := rows.Scan(
			&totalRecords,
			&transaction.ID,
			&transaction.Reference,
			&transaction.AccountID,
			&amount,
			&transaction.Kind,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		transaction.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, nil, err
		}

		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return transactions, metadata, nil
}
