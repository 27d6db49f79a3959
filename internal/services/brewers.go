package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/validation"
)

const msgInvalidRole = "Not a valid choice."

// BrewerService reads brewers and edits their profiles.
type BrewerService struct {
	brewers   BrewerStore
	roles     RoleStore
	validator *validation.Validator
}

// NewBrewerService creates a new BrewerService.
func NewBrewerService(brewers BrewerStore, roles RoleStore) *BrewerService {
	return &BrewerService{brewers: brewers, roles: roles, validator: validation.New()}
}

func (s *BrewerService) List(ctx context.Context, p pagination.Params) (pagination.Result[models.Brewer], error) {
	res, err := pagination.Fetch[models.Brewer](ctx, pagination.SourceFuncs[models.Brewer]{
		CountFunc: s.brewers.Count,
		SliceFunc: s.brewers.List,
	}, p)
	if err != nil {
		logger.Log.Errorw("failed to list brewers", "error", err)
	}
	return res, err
}

// Get returns ErrNotFound for an unknown id.
func (s *BrewerService) Get(ctx context.Context, id int64) (*models.Brewer, error) {
	b, err := s.brewers.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get brewer", "brewer_id", id, "error", err)
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// GetByUsername returns ErrNotFound for an unknown username.
func (s *BrewerService) GetByUsername(ctx context.Context, username string) (*models.Brewer, error) {
	b, err := s.brewers.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get brewer", "username", username, "error", err)
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

// resolveRole returns the named role, or the default role for "".
func (s *BrewerService) resolveRole(ctx context.Context, name string) (*models.Role, error) {
	var (
		role *models.Role
		err  error
	)
	if name == "" {
		role, err = s.roles.GetDefault(ctx)
	} else {
		role, err = s.roles.GetByName(ctx, name)
	}
	if err != nil {
		logger.Log.Errorw("failed to get role", "role", name, "error", err)
		return nil, err
	}
	if role == nil {
		return nil, fieldError("role", msgInvalidRole)
	}
	return role, nil
}

// Create adds a brewer through the API. An empty role means the default role.
func (s *BrewerService) Create(ctx context.Context, in models.BrewerInput) (*models.Brewer, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)

	fields := s.validator.Struct(in)
	if !fields.Empty() {
		return nil, invalid(fields)
	}

	taken, err := checkUnique(ctx, s.brewers, in.Email, in.Username, 0)
	if err != nil {
		return nil, err
	}
	if !taken.Empty() {
		return nil, invalid(taken)
	}

	role, err := s.resolveRole(ctx, in.Role)
	if err != nil {
		return nil, err
	}

	b, err := newBrewer(in.Email, in.Username, in.Password, role.ID, in.Confirmed)
	if err != nil {
		return nil, err
	}
	if err := s.brewers.Create(ctx, b); err != nil {
		logger.Log.Errorw("failed to save brewer", "username", b.Username, "error", err)
		return nil, err
	}
	b.RoleName, b.Permissions = role.Name, role.Permissions

	return b, nil
}

// UpdateProfile edits the brewer's own profile fields.
func (s *BrewerService) UpdateProfile(ctx context.Context, b *models.Brewer, in models.ProfileInput) error {
	if fields := s.validator.Struct(in); !fields.Empty() {
		return invalid(fields)
	}

	b.Name = strings.TrimSpace(in.Name)
	b.Location = strings.TrimSpace(in.Location)
	b.AboutMe = in.AboutMe
	if err := s.brewers.Update(ctx, b); err != nil {
		logger.Log.Errorw("failed to update profile", "brewer_id", b.ID, "error", err)
		return err
	}
	return nil
}

// AdminUpdate edits any brewer. Uniqueness checks ignore the edited brewer
// so an unchanged resubmission succeeds.
func (s *BrewerService) AdminUpdate(ctx context.Context, id int64, in models.AdminProfileInput) (*models.Brewer, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	if fields := s.validator.Struct(in); !fields.Empty() {
		return nil, invalid(fields)
	}

	taken, err := checkUnique(ctx, s.brewers, in.Email, in.Username, b.ID)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.GetByID(ctx, in.RoleID)
	if err != nil {
		logger.Log.Errorw("failed to get role", "role_id", in.RoleID, "error", err)
		return nil, err
	}
	if role == nil {
		taken.Add("role_id", msgInvalidRole)
	}
	if !taken.Empty() {
		return nil, invalid(taken)
	}

	if b.Email != in.Email {
		b.AvatarHash = models.AvatarHash(in.Email)
	}
	b.Email = in.Email
	b.Username = in.Username
	b.Confirmed = in.Confirmed
	b.RoleID = role.ID
	b.RoleName, b.Permissions = role.Name, role.Permissions
	b.Name = strings.TrimSpace(in.Name)
	b.Location = strings.TrimSpace(in.Location)
	b.AboutMe = in.AboutMe

	if err := s.brewers.Update(ctx, b); err != nil {
		logger.Log.Errorw("failed to update brewer", "brewer_id", b.ID, "error", err)
		return nil, err
	}
	return b, nil
}
