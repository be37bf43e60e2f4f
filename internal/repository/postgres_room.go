package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresRoomRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRoomRepository(db *pgxpool.Pool) *PostgresRoomRepository {
	return &PostgresRoomRepository{
		db: db,
	}
}

func (p *PostgresRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (name, description, images, type, capacity, accessible, under_maintenance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	return conn(ctx, p.db).QueryRow(
		ctx,
		query,
		room.Name,
		room.Description,
		room.Images,
		room.Type,
		room.Capacity,
		room.Accessible,
		room.UnderMaintenance).Scan(&room.ID, &room.CreatedAt)
}

func (p *PostgresRoomRepository) GetById(ctx context.Context, id int) (*domain.Room, error) {
	query := `
		SELECT id, name, description, images, type, capacity, accessible, under_maintenance, created_at
		FROM rooms
		WHERE id = $1
	`

	var room domain.Room

	err := conn(ctx, p.db).QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Description,
		&room.Images,
		&room.Type,
		&room.Capacity,
		&room.Accessible,
		&room.UnderMaintenance,
		&room.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}

		return nil, err
	}

	return &room, nil
}

func (p *PostgresRoomRepository) GetAll(
	ctx context.Context,
	filters domain.RoomFilters) ([]domain.Room, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, name, description, images, type, capacity,
			accessible, under_maintenance, created_at
		FROM rooms
		WHERE ($1::boolean IS NULL OR accessible = $1)
			AND ($2::boolean IS NULL OR under_maintenance = $2)
		ORDER BY id
		LIMIT $3 OFFSET $4
	`

	rows, err := conn(ctx, p.db).Query(
		ctx,
		query,
		filters.Accessible,
		filters.UnderMaintenance,
		filters.Limit(),
		filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	rooms := make([]domain.Room, 0)

	for rows.Next() {
		var room domain.Room

		err := rows.Scan(
			&totalRecords,
			&room.ID,
			&room.Name,
			&room.Description,
			&room.Images,
			&room.Type,
			&room.Capacity,
			&room.Accessible,
			&room.UnderMaintenance,
			&room.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return rooms, metadata, nil
}

func (p *PostgresRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, description = $2, images = $3, type = $4, capacity = $5,
			accessible = $6, under_maintenance = $7
		WHERE id = $8
	`

	tag, err := conn(ctx, p.db).Exec(
		ctx,
		query,
		room.Name,
		room.Description,
		room.Images,
		room.Type,
		room.Capacity,
		room.Accessible,
		room.UnderMaintenance,
		room.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

func (p *PostgresRoomRepository) Delete(ctx context.Context, id int) error {
	tag, err := conn(ctx, p.db).Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if code, _, ok := pgErrorCode(err); ok && code == pgerrcode.ForeignKeyViolation {
			return domain.ErrEditConflict
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}
