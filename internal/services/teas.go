package services

//go:generate mockgen -source=teas.go -destination=teas_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/validation"
)

const msgTeaExists = "Tea already exists."

// TeaStore persists the tea catalog.
type TeaStore interface {
	GetByID(ctx context.Context, id int64) (*models.Tea, error)
	GetByName(ctx context.Context, name string) (*models.Tea, error)
	Create(ctx context.Context, t *models.Tea) error
	Update(ctx context.Context, t *models.Tea) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]models.Tea, error)
	Popular(ctx context.Context) ([]models.Tea, error)
}

// TeaService manages the tea catalog.
type TeaService struct {
	teas      TeaStore
	validator *validation.Validator
}

// NewTeaService creates a new TeaService.
func NewTeaService(teas TeaStore) *TeaService {
	return &TeaService{teas: teas, validator: validation.New()}
}

// List returns a page of teas, newest first.
func (s *TeaService) List(ctx context.Context, p pagination.Params) (pagination.Result[models.Tea], error) {
	res, err := pagination.Fetch[models.Tea](ctx, pagination.SourceFuncs[models.Tea]{
		CountFunc: s.teas.Count,
		SliceFunc: s.teas.List,
	}, p)
	if err != nil {
		logger.Log.Errorw("failed to list teas", "error", err)
	}
	return res, err
}

// Get returns ErrNotFound for an unknown id.
func (s *TeaService) Get(ctx context.Context, id int64) (*models.Tea, error) {
	t, err := s.teas.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get tea", "tea_id", id, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// Popular returns every tea, most brewed first.
func (s *TeaService) Popular(ctx context.Context) ([]models.Tea, error) {
	teas, err := s.teas.Popular(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list popular teas", "error", err)
	}
	return teas, err
}

// validate checks the input and that no other tea has its name.
func (s *TeaService) validate(ctx context.Context, in *models.TeaInput, exceptID int64) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Location = strings.TrimSpace(in.Location)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	fields := s.validator.Struct(*in)
	if !fields.Empty() {
		return invalid(fields)
	}

	existing, err := s.teas.GetByName(ctx, in.Name)
	if err != nil {
		logger.Log.Errorw("failed to check tea name", "name", in.Name, "error", err)
		return err
	}
	if existing != nil && existing.ID != exceptID {
		return fieldError("name", msgTeaExists)
	}
	return nil
}

// Create adds a tea to the catalog.
func (s *TeaService) Create(ctx context.Context, in models.TeaInput) (*models.Tea, error) {
	if err := s.validate(ctx, &in, 0); err != nil {
		return nil, err
	}

	var t models.Tea
	in.Apply(&t)
	if err := s.teas.Create(ctx, &t); err != nil {
		logger.Log.Errorw("failed to save tea", "name", t.Name, "error", err)
		return nil, err
	}
	return &t, nil
}

// Update replaces the editable fields of a tea. Submitting the same data
// twice leaves the tea unchanged.
func (s *TeaService) Update(ctx context.Context, id int64, in models.TeaInput) (*models.Tea, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, &in, id); err != nil {
		return nil, err
	}

	in.Apply(t)
	if err := s.teas.Update(ctx, t); err != nil {
		logger.Log.Errorw("failed to update tea", "tea_id", id, "error", err)
		return nil, err
	}
	return t, nil
}
