package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
)

//go:generate mockgen -source=api_brewers.go -destination=api_brewers_mock.go -package=handlers

// BrewerReader defines the brewer lookups the service must implement.
type BrewerReader interface {
	List(ctx context.Context, p pagination.Params) (pagination.Result[models.Brewer], error)
	Get(ctx context.Context, id int64) (*models.Brewer, error)
}

// BrewerCreator defines the interface that creates a brewer account.
type BrewerCreator interface {
	Create(ctx context.Context, in models.BrewerInput) (*models.Brewer, error)
}

func writeBrewerList(w http.ResponseWriter, r *http.Request, res pagination.Result[models.Brewer]) {
	prev, next := apiLinks(r, res)
	writeJSON(w, http.StatusOK, models.BrewerListResponse{
		Brewers: pagination.Map(res, func(b models.Brewer) models.BrewerResponse { return brewerResponse(r, b) }),
		Prev:    prev,
		Next:    next,
		Count:   res.Total,
	})
}

// NewListBrewersHandler returns an HTTP handler listing the brewers.
// @Summary List brewers
// @Tags brewers
// @Produce json
// @Security BasicAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} models.BrewerListResponse
// @Router /brewers/ [get]
func NewListBrewersHandler(svc BrewerReader, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.List(r.Context(), pagination.FromRequest(r, perPage))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeBrewerList(w, r, res)
	}
}

// NewGetBrewerHandler returns an HTTP handler for a single brewer.
// @Summary Get a brewer
// @Tags brewers
// @Produce json
// @Security BasicAuth
// @Param id path int true "Brewer ID"
// @Success 200 {object} models.BrewerResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /brewers/{id}/ [get]
func NewGetBrewerHandler(svc BrewerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "Resource not found")
			return
		}

		b, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, brewerResponse(r, *b))
	}
}

// NewCreateBrewerHandler returns an HTTP handler creating a brewer.
// @Summary Create a brewer
// @Description Creates a brewer account. Requires the BREW and ADMINISTER permissions.
// @Tags brewers
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param brewerInput body models.BrewerInput true "Brewer"
// @Success 201 {object} models.BrewerResponse
// @Header 201 {string} Location "URL of the new brewer"
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /brewers/ [post]
func NewCreateBrewerHandler(svc BrewerCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.BrewerInput
		if err := decodeBody(r, &in); err != nil {
			writeBodyError(w, err)
			return
		}

		b, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := brewerResponse(r, *b)
		w.Header().Set("Location", resp.URL)
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewListBrewerPotsHandler returns an HTTP handler listing the pots
// brewed by a brewer.
// @Summary List the pots of a brewer
// @Tags brewers
// @Produce json
// @Security BasicAuth
// @Param id path int true "Brewer ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} models.PotListResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /brewers/{id}/pots/ [get]
func NewListBrewerPotsHandler(brewers BrewerReader, pots PotReader, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "Resource not found")
			return
		}

		if _, err := brewers.Get(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		res, err := pots.List(r.Context(), models.PotFilter{BrewerID: id}, pagination.FromRequest(r, perPage))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writePotList(w, r, res)
	}
}
