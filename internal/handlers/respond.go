package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/services"
)

var errEmptyBody = errors.New("no JSON data was given")

// writeJSON answers with v encoded as JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError answers with the JSON error body of the API.
func writeError(w http.ResponseWriter, status int, name, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: name, Message: message})
}

// NotFoundJSON answers 404 with the API error body.
func NotFoundJSON(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found", "Resource not found")
}

// MethodNotAllowedJSON answers 405 with the API error body.
func MethodNotAllowedJSON(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed", "The method is not allowed for the requested URL")
}

// writeServiceError maps a service error to its HTTP answer.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{
			Error:            "bad request",
			Message:          "Data not given or invalid",
			ValidationErrors: verr.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", "Resource not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error", "Internal server error")
	}
}

// decodeBody reads a JSON request body into v. An absent body yields
// errEmptyBody.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}

// writeBodyError answers 400 for a body decodeBody rejected.
func writeBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "bad request", "No JSON data was given")
		return
	}
	writeError(w, http.StatusBadRequest, "bad request", "Invalid JSON body")
}

// idParam parses a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
