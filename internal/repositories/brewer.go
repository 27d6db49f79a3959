package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/teaflask/internal/models"
)

const brewerSelect = `
	SELECT b.id, b.email, b.username, b.password_hash, COALESCE(b.role_id, 0) AS role_id,
	       b.confirmed, b.name, b.location, b.about_me, b.member_since, b.last_seen,
	       b.avatar_hash, COALESCE(r.name, '') AS role_name,
	       COALESCE(r.permissions, 0) AS role_permissions
	FROM brewers b
	LEFT JOIN roles r ON r.id = b.role_id
`

// BrewerRepository stores brewers. Reads join the brewer's role.
type BrewerRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBrewerRepository(db *sqlx.DB, txGetter TxGetter) *BrewerRepository {
	return &BrewerRepository{db: db, txGetter: txGetter}
}

func (r *BrewerRepository) get(ctx context.Context, where string, arg any) (*models.Brewer, error) {
	query := brewerSelect + where + " LIMIT 1"
	var b models.Brewer
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &b, query, arg)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

// GetByID returns nil when the brewer does not exist.
func (r *BrewerRepository) GetByID(ctx context.Context, id int64) (*models.Brewer, error) {
	return r.get(ctx, "WHERE b.id = $1", id)
}

func (r *BrewerRepository) GetByUsername(ctx context.Context, username string) (*models.Brewer, error) {
	return r.get(ctx, "WHERE b.username = $1", username)
}

func (r *BrewerRepository) GetByEmail(ctx context.Context, email string) (*models.Brewer, error) {
	return r.get(ctx, "WHERE b.email = $1", email)
}

// GetByUsernameOrEmail matches the identifier against both columns.
func (r *BrewerRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Brewer, error) {
	return r.get(ctx, "WHERE b.username = $1 OR b.email = $1", identifier)
}

// Create inserts b and fills its id and timestamps.
func (r *BrewerRepository) Create(ctx context.Context, b *models.Brewer) error {
	const query = `
		INSERT INTO brewers (email, username, password_hash, role_id, confirmed,
		                     name, location, about_me, avatar_hash, member_since, last_seen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id, member_since, last_seen
	`
	now := b.MemberSince
	if now.IsZero() {
		now = time.Now().UTC()
	}
	args := []any{b.Email, b.Username, b.PasswordHash, nullableID(b.RoleID), b.Confirmed,
		b.Name, b.Location, b.AboutMe, b.AvatarHash, now}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&b.ID, &b.MemberSince, &b.LastSeen)
	logQuery(query, args, b.ID, err)
	return err
}

// Update writes every mutable column of b.
func (r *BrewerRepository) Update(ctx context.Context, b *models.Brewer) error {
	const query = `
		UPDATE brewers
		SET email = $2, username = $3, password_hash = $4, role_id = $5, confirmed = $6,
		    name = $7, location = $8, about_me = $9, avatar_hash = $10
		WHERE id = $1
	`
	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query,
		b.ID, b.Email, b.Username, b.PasswordHash, nullableID(b.RoleID), b.Confirmed,
		b.Name, b.Location, b.AboutMe, b.AvatarHash)
	return err
}

// TouchLastSeen records activity of the brewer.
func (r *BrewerRepository) TouchLastSeen(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE brewers SET last_seen = $2 WHERE id = $1`
	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id, at)
	return err
}

// Count returns the number of brewers.
func (r *BrewerRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, executor(ctx, r.db, r.txGetter), `SELECT COUNT(*) FROM brewers`)
}

// List returns brewers ordered by id.
func (r *BrewerRepository) List(ctx context.Context, limit, offset int) ([]models.Brewer, error) {
	query := brewerSelect + " ORDER BY b.id LIMIT $1 OFFSET $2"
	return r.list(ctx, query, limit, offset)
}

// CountByRole returns the number of brewers holding the role.
func (r *BrewerRepository) CountByRole(ctx context.Context, roleID int64) (int, error) {
	return count(ctx, executor(ctx, r.db, r.txGetter),
		`SELECT COUNT(*) FROM brewers WHERE role_id = $1`, roleID)
}

// ListByRole returns the role's brewers, newest members first.
func (r *BrewerRepository) ListByRole(ctx context.Context, roleID int64, limit, offset int) ([]models.Brewer, error) {
	query := brewerSelect + " WHERE b.role_id = $3 ORDER BY b.member_since DESC, b.id DESC LIMIT $1 OFFSET $2"
	return r.list(ctx, query, limit, offset, roleID)
}

func (r *BrewerRepository) list(ctx context.Context, query string, args ...any) ([]models.Brewer, error) {
	brewers := []models.Brewer{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &brewers, query, args...)
	logQuery(query, args, len(brewers), err)
	if err != nil {
		return nil, err
	}
	return brewers, nil
}
