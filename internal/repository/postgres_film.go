package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresFilmRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFilmRepository(db *pgxpool.Pool) *PostgresFilmRepository {
	return &PostgresFilmRepository{
		db: db,
	}
}

func (p *PostgresFilmRepository) Create(ctx context.Context, film *domain.Film) error {
	query := `
		INSERT INTO films (name, slug, runtime, available)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	return conn(ctx, p.db).QueryRow(
		ctx,
		query,
		film.Name,
		film.Slug,
		film.Runtime,
		film.Available).Scan(&film.ID, &film.CreatedAt, &film.UpdatedAt)
}

func (p *PostgresFilmRepository) GetById(ctx context.Context, id int) (*domain.Film, error) {
	query := `
		SELECT id, name, slug, runtime, available, created_at, updated_at
		FROM films
		WHERE id = $1
	`

	var film domain.Film

	err := conn(ctx, p.db).QueryRow(ctx, query, id).Scan(
		&film.ID,
		&film.Name,
		&film.Slug,
		&film.Runtime,
		&film.Available,
		&film.CreatedAt,
		&film.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFilmNotFound
		}

		return nil, err
	}

	return &film, nil
}

func (p *PostgresFilmRepository) GetAll(
	ctx context.Context,
	filters domain.FilmFilters) ([]domain.Film, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, name, slug, runtime, available, created_at, updated_at
		FROM films
		WHERE ($1::boolean IS NULL OR available = $1)
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := conn(ctx, p.db).Query(ctx, query, filters.Available, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	films := make([]domain.Film, 0)

	for rows.Next() {
		var film domain.Film

		err := rows.Scan(
			&totalRecords,
			&film.ID,
			&film.Name,
			&film.Slug,
			&film.Runtime,
			&film.Available,
			&film.CreatedAt,
			&film.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		films = append(films, film)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return films, metadata, nil
}

func (p *PostgresFilmRepository) Update(ctx context.Context, film *domain.Film) error {
	query := `
		UPDATE films
		SET name = $1, slug = $2, runtime = $3, available = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := conn(ctx, p.db).QueryRow(
		ctx,
		query,
		film.Name,
		film.Slug,
		film.Runtime,
		film.Available,
		film.ID).Scan(&film.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFilmNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresFilmRepository) SetAvailability(ctx context.Context, id int, available bool) error {
	query := `UPDATE films SET available = $1, updated_at = NOW() WHERE id = $2`

	tag, err := conn(ctx, p.db).Exec(ctx, query, available, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrFilmNotFound
	}

	return nil
}

func (p *PostgresFilmRepository) Delete(ctx context.Context, id int) error {
	tag, err := conn(ctx, p.db).Exec(ctx, `DELETE FROM films WHERE id = $1`, id)
	if err != nil {
		if code, _, ok := pgErrorCode(err); ok && code == pgerrcode.ForeignKeyViolation {
			return domain.ErrEditConflict
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrFilmNotFound
	}

	return nil
}
