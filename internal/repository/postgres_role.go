package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

type PostgresRoleRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRoleRepository(db *pgxpool.Pool) *PostgresRoleRepository {
	return &PostgresRoleRepository{
		db: db,
	}
}

func (p *PostgresRoleRepository) Create(ctx context.Context, role *domain.Role) error {
	query := `INSERT INTO roles (name, type, is_admin) VALUES ($1, $2, $3) RETURNING id`

	err := conn(ctx, p.db).QueryRow(ctx, query, role.Name, role.Type, role.IsAdmin).Scan(&role.ID)
	if err != nil {
		if code, _, ok := pgErrorCode(err); ok && code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateRole
		}

		return err
	}

	return nil
}

func (p *PostgresRoleRepository) GetById(ctx context.Context, id int) (*domain.Role, error) {
	query := `SELECT id, name, type, is_admin FROM roles WHERE id = $1`

	var role domain.Role

	err := conn(ctx, p.db).QueryRow(ctx, query, id).Scan(&role.ID, &role.Name, &role.Type, &role.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}

		return nil, err
	}

	return &role, nil
}

func (p *PostgresRoleRepository) GetAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := conn(ctx, p.db).Query(ctx, `SELECT id, name, type, is_admin FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]domain.Role, 0)

	for rows.Next() {
		var role domain.Role

		err := rows.Scan(&role.ID, &role.Name, &role.Type, &role.IsAdmin)
		if err != nil {
			return nil, err
		}

		roles = append(roles, role)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

func (p *PostgresRoleRepository) GetDefault(ctx context.Context) (*domain.Role, error) {
	query := `SELECT id, name, type, is_admin FROM roles WHERE NOT is_admin ORDER BY id LIMIT 1`

	var role domain.Role

	err := conn(ctx, p.db).QueryRow(ctx, query).Scan(&role.ID, &role.Name, &role.Type, &role.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoDefaultRole
		}

		return nil, err
	}

	return &role, nil
}

func (p *PostgresRoleRepository) Update(ctx context.Context, role *domain.Role) error {
	query := `UPDATE roles SET name = $1, type = $2, is_admin = $3 WHERE id = $4`

	tag, err := conn(ctx, p.db).Exec(ctx, query, role.Name, role.Type, role.IsAdmin, role.ID)
	if err != nil {
		if code, _, ok := pgErrorCode(err); ok && code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateRole
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRoleNotFound
	}

	return nil
}

func (p *PostgresRoleRepository) Delete(ctx context.Context, id int) error {
	tag, err := conn(ctx, p.db).Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		if code, _, ok := pgErrorCode(err); ok && code == pgerrcode.ForeignKeyViolation {
			return domain.ErrEditConflict
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRoleNotFound
	}

	return nil
}
