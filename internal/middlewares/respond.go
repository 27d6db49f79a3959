package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/teaflask/internal/models"
)

// writeError answers with the JSON error body of the API.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   errorName(status),
		Message: message,
	})
}

func errorName(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	default:
		return "internal server error"
	}
}
