package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
)

//go:generate mockgen -source=api_roles.go -destination=api_roles_mock.go -package=handlers

// RoleReader defines the role lookups the service must implement.
type RoleReader interface {
	List(ctx context.Context, p pagination.Params) (pagination.Result[models.Role], error)
	Get(ctx context.Context, id int64) (*models.Role, error)
	Brewers(ctx context.Context, roleID int64, p pagination.Params) (pagination.Result[models.Brewer], error)
}

// NewListRolesHandler returns an HTTP handler listing the roles.
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BasicAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} models.RoleListResponse
// @Router /roles/ [get]
func NewListRolesHandler(svc RoleReader, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.List(r.Context(), pagination.FromRequest(r, perPage))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		prev, next := apiLinks(r, res)
		writeJSON(w, http.StatusOK, models.RoleListResponse{
			Roles: pagination.Map(res, func(role models.Role) models.RoleResponse { return roleResponse(r, role) }),
			Prev:  prev,
			Next:  next,
			Count: res.Total,
		})
	}
}

// NewGetRoleHandler returns an HTTP handler for a single role.
// @Summary Get a role
// @Tags roles
// @Produce json
// @Security BasicAuth
// @Param id path int true "Role ID"
// @Success 200 {object} models.RoleResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /roles/{id}/ [get]
func NewGetRoleHandler(svc RoleReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "Resource not found")
			return
		}

		role, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, roleResponse(r, *role))
	}
}

// NewListRoleBrewersHandler returns an HTTP handler listing the brewers
// holding a role.
// @Summary List the brewers of a role
// @Tags roles
// @Produce json
// @Security BasicAuth
// @Param id path int true "Role ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} models.BrewerListResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /roles/{id}/brewers/ [get]
func NewListRoleBrewersHandler(svc RoleReader, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "Resource not found")
			return
		}

		res, err := svc.Brewers(r.Context(), id, pagination.FromRequest(r, perPage))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeBrewerList(w, r, res)
	}
}
