package services

//go:generate mockgen -source=roles.go -destination=roles_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
)

// RoleStore persists roles.
type RoleStore interface {
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	GetDefault(ctx context.Context) (*models.Role, error)
	All(ctx context.Context) ([]models.Role, error)
	Upsert(ctx context.Context, seed models.SeedRole) (*models.Role, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]models.Role, error)
}

// RoleService reads roles and installs the seed set.
type RoleService struct {
	roles   RoleStore
	brewers BrewerStore
}

// NewRoleService creates a new RoleService.
func NewRoleService(roles RoleStore, brewers BrewerStore) *RoleService {
	return &RoleService{roles: roles, brewers: brewers}
}

// Seed inserts the seed roles or refreshes their permissions.
func (s *RoleService) Seed(ctx context.Context) error {
	for _, seed := range models.SeedRoles() {
		role, err := s.roles.Upsert(ctx, seed)
		if err != nil {
			logger.Log.Errorw("failed to seed role", "role", seed.Name, "error", err)
			return err
		}
		logger.Log.Infow("role seeded", "role", role.Name, "permissions", role.Permissions, "default", role.Default)
	}
	return nil
}

func (s *RoleService) List(ctx context.Context, p pagination.Params) (pagination.Result[models.Role], error) {
	res, err := pagination.Fetch[models.Role](ctx, pagination.SourceFuncs[models.Role]{
		CountFunc: s.roles.Count,
		SliceFunc: s.roles.List,
	}, p)
	if err != nil {
		logger.Log.Errorw("failed to list roles", "error", err)
	}
	return res, err
}

// Get returns ErrNotFound for an unknown id.
func (s *RoleService) Get(ctx context.Context, id int64) (*models.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get role", "role_id", id, "error", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrNotFound
	}
	return role, nil
}

// All returns every role, for the administrator's profile form.
func (s *RoleService) All(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roles.All(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list roles", "error", err)
	}
	return roles, err
}

// Brewers lists the brewers holding the role.
func (s *RoleService) Brewers(ctx context.Context, roleID int64, p pagination.Params) (pagination.Result[models.Brewer], error) {
	if _, err := s.Get(ctx, roleID); err != nil {
		return pagination.Result[models.Brewer]{}, err
	}
	res, err := pagination.Fetch[models.Brewer](ctx, pagination.SourceFuncs[models.Brewer]{
		CountFunc: func(ctx context.Context) (int, error) { return s.brewers.CountByRole(ctx, roleID) },
		SliceFunc: func(ctx context.Context, limit, offset int) ([]models.Brewer, error) {
			return s.brewers.ListByRole(ctx, roleID, limit, offset)
		},
	}, p)
	if err != nil {
		logger.Log.Errorw("failed to list role brewers", "role_id", roleID, "error", err)
	}
	return res, err
}
