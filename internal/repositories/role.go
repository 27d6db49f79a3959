package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/teaflask/internal/models"
)

const roleSelect = `SELECT id, name, is_default, permissions FROM roles`

// RoleRepository stores roles.
type RoleRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRoleRepository(db *sqlx.DB, txGetter TxGetter) *RoleRepository {
	return &RoleRepository{db: db, txGetter: txGetter}
}

func (r *RoleRepository) get(ctx context.Context, where string, args ...any) (*models.Role, error) {
	query := roleSelect + " " + where + " LIMIT 1"
	var role models.Role
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &role, query, args...)
	if err != nil || !found {
		return nil, err
	}
	return &role, nil
}

// GetByID returns nil when the role does not exist.
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	return r.get(ctx, "WHERE id = $1", id)
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	return r.get(ctx, "WHERE name = $1", name)
}

// GetDefault returns the role assigned to new brewers.
func (r *RoleRepository) GetDefault(ctx context.Context) (*models.Role, error) {
	return r.get(ctx, "WHERE is_default ORDER BY id")
}

// All returns every role ordered by permissions, then name.
func (r *RoleRepository) All(ctx context.Context) ([]models.Role, error) {
	query := roleSelect + " ORDER BY permissions, name"
	return r.list(ctx, query)
}

// Upsert creates the seed role or refreshes its permissions and default flag.
func (r *RoleRepository) Upsert(ctx context.Context, seed models.SeedRole) (*models.Role, error) {
	const query = `
		INSERT INTO roles (name, is_default, permissions)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET is_default = EXCLUDED.is_default,
		    permissions = EXCLUDED.permissions
		RETURNING id, name, is_default, permissions
	`
	args := []any{seed.Name, seed.Default, seed.Permissions}
	var role models.Role
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &role, query, args...)
	logQuery(query, args, role, err)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, executor(ctx, r.db, r.txGetter), `SELECT COUNT(*) FROM roles`)
}

// List returns a page of roles ordered by id.
func (r *RoleRepository) List(ctx context.Context, limit, offset int) ([]models.Role, error) {
	query := roleSelect + " ORDER BY id LIMIT $1 OFFSET $2"
	return r.list(ctx, query, limit, offset)
}

func (r *RoleRepository) list(ctx context.Context, query string, args ...any) ([]models.Role, error) {
	roles := []models.Role{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &roles, query, args...)
	logQuery(query, args, len(roles), err)
	if err != nil {
		return nil, err
	}
	return roles, nil
}
