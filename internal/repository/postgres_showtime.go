package repository

import (
	"context"
	"errors"
	"slices"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

// Advisory lock namespaces used by LockScopes.
const (
	filmLockSpace = 1
	roomLockSpace = 2
)

const showtimeColumns = `
	s.id, s.capacity, s.occupied, s.type, s.start_time, s.end_time,
	s.film_id, f.name, s.room_id, r.name, s.created_at`

const showtimeJoins = `
	FROM showtimes s
	JOIN films f ON s.film_id = f.id
	JOIN rooms r ON s.room_id = r.id`

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (film_id, room_id, type, start_time, end_time, capacity, occupied)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := conn(ctx, p.db).QueryRow(
		ctx,
		query,
		showtime.FilmID,
		showtime.RoomID,
		showtime.Type,
		showtime.Start,
		showtime.End,
		showtime.Capacity,
		showtime.Occupied).Scan(&showtime.ID, &showtime.CreatedAt)
	if err != nil {
		return mapShowtimeError(err)
	}

	return nil
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	return p.getById(ctx, id, false)
}

func (p *PostgresShowtimeRepository) GetByIdForUpdate(ctx context.Context, id int) (*domain.Showtime, error) {
	return p.getById(ctx, id, true)
}

func (p *PostgresShowtimeRepository) getById(ctx context.Context, id int, forUpdate bool) (*domain.Showtime, error) {
	query := `SELECT ` + showtimeColumns + showtimeJoins + ` WHERE s.id = $1`
	if forUpdate {
		query += ` FOR UPDATE OF s`
	}

	showtime, err := scanShowtime(conn(ctx, p.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}

		return nil, err
	}

	return showtime, nil
}

func (p *PostgresShowtimeRepository) GetByFilm(
	ctx context.Context,
	filmID, excludeID int) ([]domain.Showtime, error) {

	query := `SELECT ` + showtimeColumns + showtimeJoins + `
		WHERE s.film_id = $1 AND s.id <> $2
		ORDER BY s.start_time`

	return p.list(ctx, query, filmID, excludeID)
}

func (p *PostgresShowtimeRepository) GetByRoom(
	ctx context.Context,
	roomID, excludeID int) ([]domain.Showtime, error) {

	query := `SELECT ` + showtimeColumns + showtimeJoins + `
		WHERE s.room_id = $1 AND s.id <> $2
		ORDER BY s.start_time`

	return p.list(ctx, query, roomID, excludeID)
}

func (p *PostgresShowtimeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Showtime, error) {
	rows, err := conn(ctx, p.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		showtime, err := scanShowtime(rows)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, *showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

// GetAll lists showtimes of rooms that are not under maintenance, optionally
// narrowed to a film, a room and a [from, to] start interval.
func (p *PostgresShowtimeRepository) GetAll(
	ctx context.Context,
	filters domain.ShowtimeFilters) ([]domain.Showtime, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), ` + showtimeColumns + showtimeJoins + `
		WHERE NOT r.under_maintenance
			AND ($1::int IS NULL OR s.film_id = $1)
			AND ($2::int IS NULL OR s.room_id = $2)
			AND ($3::timestamptz IS NULL OR s.start_time >= $3)
			AND ($4::timestamptz IS NULL OR s.start_time <= $4)
		ORDER BY s.start_time, s.id
		LIMIT $5 OFFSET $6`

	rows, err := conn(ctx, p.db).Query(
		ctx,
		query,
		filters.FilmID,
		filters.RoomID,
		filters.From,
		filters.To,
		filters.Limit(),
		filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&totalRecords,
			&showtime.ID,
			&showtime.Capacity,
			&showtime.Occupied,
			&showtime.Type,
			&showtime.Start,
			&showtime.End,
			&showtime.FilmID,
			&showtime.FilmName,
			&showtime.RoomID,
			&showtime.RoomName,
			&showtime.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return showtimes, metadata, nil
}

func (p *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		UPDATE showtimes
		SET film_id = $1, room_id = $2, type = $3, start_time = $4, end_time = $5,
			capacity = $6, occupied = $7
		WHERE id = $8
	`

	tag, err := conn(ctx, p.db).Exec(
		ctx,
		query,
		showtime.FilmID,
		showtime.RoomID,
		showtime.Type,
		showtime.Start,
		showtime.End,
		showtime.Capacity,
		showtime.Occupied,
		showtime.ID)
	if err != nil {
		return mapShowtimeError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrShowtimeNotFound
	}

	return nil
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	tag, err := conn(ctx, p.db).Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrShowtimeNotFound
	}

	return nil
}

// LockScopes takes transaction scoped advisory locks, films before rooms and
// each in ascending id order, so concurrent writers always queue the same way.
func (p *PostgresShowtimeRepository) LockScopes(ctx context.Context, filmIDs, roomIDs []int) error {
	q := conn(ctx, p.db)

	lock := func(space int, ids []int) error {
		ids = slices.Clone(ids)
		slices.Sort(ids)

		for _, id := range slices.Compact(ids) {
			_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, space, id)
			if err != nil {
				return err
			}
		}

		return nil
	}

	if err := lock(filmLockSpace, filmIDs); err != nil {
		return err
	}

	return lock(roomLockSpace, roomIDs)
}

func (p *PostgresShowtimeRepository) IncrementOccupied(ctx context.Context, id int) (int, error) {
	query := `
		UPDATE showtimes
		SET occupied = occupied + 1
		WHERE id = $1 AND occupied < capacity
		RETURNING occupied
	`

	var occupied int

	err := conn(ctx, p.db).QueryRow(ctx, query, id).Scan(&occupied)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrShowtimeFull
		}
		return 0, err
	}

	return occupied, nil
}

func scanShowtime(row pgx.Row) (*domain.Showtime, error) {
	var showtime domain.Showtime

	err := row.Scan(
		&showtime.ID,
		&showtime.Capacity,
		&showtime.Occupied,
		&showtime.Type,
		&showtime.Start,
		&showtime.End,
		&showtime.FilmID,
		&showtime.FilmName,
		&showtime.RoomID,
		&showtime.RoomName,
		&showtime.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &showtime, nil
}

func mapShowtimeError(err error) error {
	code, constraint, ok := pgErrorCode(err)
	if !ok {
		return err
	}

	switch {
	case code == pgerrcode.ExclusionViolation && constraint == "showtimes_film_overlap":
		return domain.ErrFilmOverlap
	case code == pgerrcode.ExclusionViolation && constraint == "showtimes_room_overlap":
		return domain.ErrRoomOverlap
	case code == pgerrcode.CheckViolation && constraint == "showtimes_occupied_check":
		return domain.ErrCapacityExceeded
	case code == pgerrcode.CheckViolation && constraint == "showtimes_interval_check":
		return &domain.RuleViolationError{
			Rule:    domain.RuleInvalidInterval,
			Message: "the showtime must end after it starts",
		}
	case code == pgerrcode.ForeignKeyViolation:
		return domain.ErrEditConflict
	default:
		return err
	}
}
