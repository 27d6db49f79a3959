package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/teaflask/internal/models"
)

const potSelect = `
	SELECT p.id, p.brewed_at, p.drank_at, p.tea_id, p.brewer_id,
	       t.name AS tea_name, b.username AS brewer_username, b.name AS brewer_name
	FROM pots p
	JOIN teas t ON t.id = p.tea_id
	JOIN brewers b ON b.id = p.brewer_id
`

// potWhere renders the filter, numbering placeholders after the first n.
func potWhere(f models.PotFilter, n int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.TeaID != 0 {
		args = append(args, f.TeaID)
		conds = append(conds, fmt.Sprintf("p.tea_id = $%d", n+len(args)))
	}
	if f.BrewerID != 0 {
		args = append(args, f.BrewerID)
		conds = append(conds, fmt.Sprintf("p.brewer_id = $%d", n+len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// PotRepository stores brewing events.
type PotRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPotRepository(db *sqlx.DB, txGetter TxGetter) *PotRepository {
	return &PotRepository{db: db, txGetter: txGetter}
}

// GetByID returns nil when the pot does not exist.
func (r *PotRepository) GetByID(ctx context.Context, id int64) (*models.Pot, error) {
	query := potSelect + " WHERE p.id = $1"
	var p models.Pot
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &p, query, id)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// Create inserts a drinkable pot and fills its id.
func (r *PotRepository) Create(ctx context.Context, p *models.Pot) error {
	const query = `
		INSERT INTO pots (brewed_at, tea_id, brewer_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	args := []any{p.BrewedAt, p.TeaID, p.BrewerID}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &p.ID, query, args...)
	logQuery(query, args, p.ID, err)
	if err == nil {
		p.DrankAt = nil
	}
	return err
}

// MarkDrunk sets drank_at once. It reports false when the pot was already drunk.
func (r *PotRepository) MarkDrunk(ctx context.Context, id int64, at time.Time) (bool, error) {
	const query = `UPDATE pots SET drank_at = $2 WHERE id = $1 AND drank_at IS NULL`
	n, err := exec(ctx, executor(ctx, r.db, r.txGetter), query, id, at)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Current returns the most recently brewed drinkable pot, or nil.
func (r *PotRepository) Current(ctx context.Context) (*models.Pot, error) {
	query := potSelect + " WHERE p.drank_at IS NULL ORDER BY p.brewed_at DESC, p.id DESC LIMIT 1"
	var p models.Pot
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &p, query)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// Recent returns the last n pots brewed.
func (r *PotRepository) Recent(ctx context.Context, n int) ([]models.Pot, error) {
	query := potSelect + " ORDER BY p.brewed_at DESC, p.id DESC LIMIT $1"
	return r.list(ctx, query, n)
}

// Count returns the number of pots matching f.
func (r *PotRepository) Count(ctx context.Context, f models.PotFilter) (int, error) {
	where, args := potWhere(f, 0)
	return count(ctx, executor(ctx, r.db, r.txGetter), "SELECT COUNT(*) FROM pots p"+where, args...)
}

// List returns a page of pots matching f, newest first.
func (r *PotRepository) List(ctx context.Context, f models.PotFilter, limit, offset int) ([]models.Pot, error) {
	where, args := potWhere(f, 2)
	query := potSelect + where + " ORDER BY p.brewed_at DESC, p.id DESC LIMIT $1 OFFSET $2"
	return r.list(ctx, query, append([]any{limit, offset}, args...)...)
}

func (r *PotRepository) list(ctx context.Context, query string, args ...any) ([]models.Pot, error) {
	pots := []models.Pot{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &pots, query, args...)
	logQuery(query, args, len(pots), err)
	if err != nil {
		return nil, err
	}
	return pots, nil
}
