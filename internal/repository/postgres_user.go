package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash, role_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := conn(ctx, p.db).QueryRow(ctx,
		query,
		user.Email,
		user.Password.Hash,
		user.RoleID).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if code, _, ok := pgErrorCode(err); ok && code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateEmail
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.role_id, r.is_admin, u.created_at
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.email = $1
	`

	return p.get(ctx, query, email)
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.role_id, r.is_admin, u.created_at
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.id = $1
	`

	return p.get(ctx, query, id)
}

func (p *PostgresUserRepository) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User

	err := conn(ctx, p.db).QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Password.Hash,
		&user.RoleID,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}
