package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
)

//go:generate mockgen -source=api_teas.go -destination=api_teas_mock.go -package=handlers

// TeaReader defines the tea lookups the service must implement.
type TeaReader interface {
	List(ctx context.Context, p pagination.Params) (pagination.Result[models.Tea], error)
	Get(ctx context.Context, id int64) (*models.Tea, error)
}

// TeaCreator defines the interface that adds a tea.
type TeaCreator interface {
	Create(ctx context.Context, in models.TeaInput) (*models.Tea, error)
}

// NewListTeasHandler returns an HTTP handler listing the teas.
// @Summary List teas
// @Description Returns a page of teas, newest first.
// @Tags teas
// @Produce json
// @Security BasicAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} models.TeaListResponse
// @Router /teas/ [get]
func NewListTeasHandler(svc TeaReader, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.List(r.Context(), pagination.FromRequest(r, perPage))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		prev, next := apiLinks(r, res)
		writeJSON(w, http.StatusOK, models.TeaListResponse{
			Teas:  pagination.Map(res, func(t models.Tea) models.TeaResponse { return teaResponse(r, t) }),
			Prev:  prev,
			Next:  next,
			Count: res.Total,
		})
	}
}

// NewGetTeaHandler returns an HTTP handler for a single tea.
// @Summary Get a tea
// @Tags teas
// @Produce json
// @Security BasicAuth
// @Param id path int true "Tea ID"
// @Success 200 {object} models.TeaResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /teas/{id} [get]
func NewGetTeaHandler(svc TeaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "Resource not found")
			return
		}

		tea, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, teaResponse(r, *tea))
	}
}

// NewCreateTeaHandler returns an HTTP handler adding a tea.
// @Summary Add a tea
// @Description Adds a tea to the catalog. Requires the BREW permission.
// @Tags teas
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param teaInput body models.TeaInput true "Tea"
// @Success 201 {object} models.TeaResponse
// @Header 201 {string} Location "URL of the new tea"
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /teas/ [post]
func NewCreateTeaHandler(svc TeaCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.TeaInput
		if err := decodeBody(r, &in); err != nil {
			writeBodyError(w, err)
			return
		}

		tea, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := teaResponse(r, *tea)
		w.Header().Set("Location", resp.URL)
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewListTeaPotsHandler returns an HTTP handler listing the pots of a tea.
// @Summary List the pots of a tea
// @Tags teas
// @Produce json
// @Security BasicAuth
// @Param id path int true "Tea ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} models.PotListResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /teas/{id}/pots/ [get]
func NewListTeaPotsHandler(teas TeaReader, pots PotReader, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "Resource not found")
			return
		}

		if _, err := teas.Get(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		res, err := pots.List(r.Context(), models.PotFilter{TeaID: id}, pagination.FromRequest(r, perPage))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writePotList(w, r, res)
	}
}
