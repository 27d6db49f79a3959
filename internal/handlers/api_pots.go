package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/principal"
)

//go:generate mockgen -source=api_pots.go -destination=api_pots_mock.go -package=handlers

// PotReader defines the pot lookups the service must implement.
type PotReader interface {
	List(ctx context.Context, f models.PotFilter, p pagination.Params) (pagination.Result[models.Pot], error)
	Get(ctx context.Context, id int64) (*models.Pot, error)
}

// PotBrewer defines the interface that brews a pot.
type PotBrewer interface {
	Brew(ctx context.Context, b *models.Brewer, in models.PotInput) (*models.Pot, error)
}

func writePotList(w http.ResponseWriter, r *http.Request, res pagination.Result[models.Pot]) {
	prev, next := apiLinks(r, res)
	writeJSON(w, http.StatusOK, models.PotListResponse{
		Pots:  pagination.Map(res, func(p models.Pot) models.PotResponse { return potResponse(r, p) }),
		Prev:  prev,
		Next:  next,
		Count: res.Total,
	})
}

// NewListPotsHandler returns an HTTP handler listing every pot.
// @Summary List pots
// @Description Returns a page of pots, most recently brewed first.
// @Tags pots
// @Produce json
// @Security BasicAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size"
// @Success 200 {object} models.PotListResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /pots/ [get]
func NewListPotsHandler(svc PotReader, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.List(r.Context(), models.PotFilter{}, pagination.FromRequest(r, perPage))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writePotList(w, r, res)
	}
}

// NewGetPotHandler returns an HTTP handler for a single pot.
// @Summary Get a pot
// @Tags pots
// @Produce json
// @Security BasicAuth
// @Param id path int true "Pot ID"
// @Success 200 {object} models.PotResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pots/{id} [get]
func NewGetPotHandler(svc PotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			writeError(w, http.StatusNotFound, "not found", "Resource not found")
			return
		}

		pot, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, potResponse(r, *pot))
	}
}

// NewCreatePotHandler returns an HTTP handler brewing a pot as the
// authenticated brewer.
// @Summary Brew a pot
// @Description Records a drinkable pot of an existing tea. Requires the BREW permission.
// @Tags pots
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param potInput body models.PotInput true "Tea to brew"
// @Success 201 {object} models.PotResponse
// @Header 201 {string} Location "URL of the new pot"
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /pots/ [post]
func NewCreatePotHandler(svc PotBrewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.PotInput
		if err := decodeBody(r, &in); err != nil {
			writeBodyError(w, err)
			return
		}

		b := principal.FromContext(r.Context()).Brewer()
		if b == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Invalid Credentials")
			return
		}

		pot, err := svc.Brew(r.Context(), b, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := potResponse(r, *pot)
		w.Header().Set("Location", resp.URL)
		writeJSON(w, http.StatusCreated, resp)
	}
}
