package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/teaflask/internal/models"
)

const teaSelect = `
	SELECT t.id, t.name, t.category, t.location, t.image_url,
	       t.description, t.brewing_methods, t.tasting_notes
	FROM teas t
`

// TeaRepository stores the tea catalog.
type TeaRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTeaRepository(db *sqlx.DB, txGetter TxGetter) *TeaRepository {
	return &TeaRepository{db: db, txGetter: txGetter}
}

func (r *TeaRepository) get(ctx context.Context, where string, arg any) (*models.Tea, error) {
	query := teaSelect + where + " LIMIT 1"
	var t models.Tea
	found, err := getOne(ctx, executor(ctx, r.db, r.txGetter), &t, query, arg)
	if err != nil || !found {
		return nil, err
	}
	return &t, nil
}

// GetByID returns nil when the tea does not exist.
func (r *TeaRepository) GetByID(ctx context.Context, id int64) (*models.Tea, error) {
	return r.get(ctx, "WHERE t.id = $1", id)
}

func (r *TeaRepository) GetByName(ctx context.Context, name string) (*models.Tea, error) {
	return r.get(ctx, "WHERE t.name = $1", name)
}

// Create inserts t and fills its id.
func (r *TeaRepository) Create(ctx context.Context, t *models.Tea) error {
	const query = `
		INSERT INTO teas (name, category, location, image_url, description, brewing_methods, tasting_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	args := []any{t.Name, t.Category, t.Location, t.ImageURL, t.Description, t.BrewingMethods, t.TastingNotes}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &t.ID, query, args...)
	logQuery(query, args, t.ID, err)
	return err
}

func (r *TeaRepository) Update(ctx context.Context, t *models.Tea) error {
	const query = `
		UPDATE teas
		SET name = $2, category = $3, location = $4, image_url = $5,
		    description = $6, brewing_methods = $7, tasting_notes = $8
		WHERE id = $1
	`
	_, err := exec(ctx, executor(ctx, r.db, r.txGetter), query,
		t.ID, t.Name, t.Category, t.Location, t.ImageURL, t.Description, t.BrewingMethods, t.TastingNotes)
	return err
}

func (r *TeaRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, executor(ctx, r.db, r.txGetter), `SELECT COUNT(*) FROM teas`)
}

// List returns a page of teas, newest first.
func (r *TeaRepository) List(ctx context.Context, limit, offset int) ([]models.Tea, error) {
	query := teaSelect + " ORDER BY t.id DESC LIMIT $1 OFFSET $2"
	return r.list(ctx, query, limit, offset)
}

// Popular returns every tea, most brewed first.
func (r *TeaRepository) Popular(ctx context.Context) ([]models.Tea, error) {
	query := teaSelect + `
		LEFT JOIN pots p ON p.tea_id = t.id
		GROUP BY t.id
		ORDER BY COUNT(p.id) DESC, t.name
	`
	return r.list(ctx, query)
}

func (r *TeaRepository) list(ctx context.Context, query string, args ...any) ([]models.Tea, error) {
	teas := []models.Tea{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &teas, query, args...)
	logQuery(query, args, len(teas), err)
	if err != nil {
		return nil, err
	}
	return teas, nil
}
