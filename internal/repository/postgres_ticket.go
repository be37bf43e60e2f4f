package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

func (p *PostgresTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (name, kind, remaining_uses, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return conn(ctx, p.db).QueryRow(
		ctx,
		query,
		ticket.Name,
		ticket.Kind,
		ticket.RemainingUses,
		ticket.UserID).Scan(&ticket.ID, &ticket.CreatedAt)
}

func (p *PostgresTicketRepository) GetOwnedBy(ctx context.Context, ticketID, userID int) (*domain.Ticket, error) {
	query := `
		SELECT id, name, kind, remaining_uses, user_id, created_at
		FROM tickets
		WHERE id = $1 AND user_id = $2
	`

	var ticket domain.Ticket

	q := conn(ctx, p.db)

	err := q.QueryRow(ctx, query, ticketID, userID).Scan(
		&ticket.ID,
		&ticket.Name,
		&ticket.Kind,
		&ticket.RemainingUses,
		&ticket.UserID,
		&ticket.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}

		return nil, err
	}

	redemptions, err := p.retrieveRedemptions(ctx, q, ticket.ID)
	if err != nil {
		return nil, err
	}

	ticket.Redemptions = redemptions

	return &ticket, nil
}

func (p *PostgresTicketRepository) retrieveRedemptions(
	ctx context.Context,
	q querier,
	ticketID int) ([]domain.Redemption, error) {

	query := `
		SELECT showtime_id, redeemed_at
		FROM ticket_redemptions
		WHERE ticket_id = $1
		ORDER BY redeemed_at, id
	`

	rows, err := q.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	redemptions := make([]domain.Redemption, 0)

	for rows.Next() {
		var redemption domain.Redemption

		err := rows.Scan(&redemption.ShowtimeID, &redemption.RedeemedAt)
		if err != nil {
			return nil, err
		}

		redemptions = append(redemptions, redemption)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return redemptions, nil
}

func (p *PostgresTicketRepository) GetAllByUser(
	ctx context.Context,
	userID int,
	filters domain.TicketFilters) ([]domain.Ticket, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, name, kind, remaining_uses, user_id, created_at
		FROM tickets
		WHERE user_id = $1 AND ($2::text IS NULL OR kind = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`

	var kind *string
	if filters.Kind != nil {
		k := string(*filters.Kind)
		kind = &k
	}

	rows, err := conn(ctx, p.db).Query(ctx, query, userID, kind, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	tickets := make([]domain.Ticket, 0)

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(
			&totalRecords,
			&ticket.ID,
			&ticket.Name,
			&ticket.Kind,
			&ticket.RemainingUses,
			&ticket.UserID,
			&ticket.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return tickets, metadata, nil
}

func (p *PostgresTicketRepository) Redeem(ctx context.Context, ticketID, userID, showtimeID int) (int, error) {
	q := conn(ctx, p.db)

	query := `
		UPDATE tickets
		SET remaining_uses = remaining_uses - 1
		WHERE id = $1 AND user_id = $2 AND remaining_uses >= 1
		RETURNING remaining_uses
	`

	var remaining int

	err := q.QueryRow(ctx, query, ticketID, userID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrTicketExhausted
		}
		return 0, err
	}

	query = `INSERT INTO ticket_redemptions (ticket_id, showtime_id) VALUES ($1, $2)`

	_, err = q.Exec(ctx, query, ticketID, showtimeID)
	if err != nil {
		return 0, err
	}

	return remaining, nil
}
