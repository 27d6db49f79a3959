package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/sbilibin2017/teaflask/internal/validation"
	"github.com/sbilibin2017/teaflask/internal/web"
)

// View renders the HTML pages.
type View interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, page web.Page)
	Error(w http.ResponseWriter, r *http.Request, status int)
}

// formErrors extracts the field errors of a rejected submission.
func formErrors(err error) (validation.Errors, bool) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}

// pageError renders the error page matching err.
func pageError(view View, w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrNotFound) {
		view.Error(w, r, http.StatusNotFound)
		return
	}
	logger.Log.Errorw("internal server error", "err", err, "path", r.URL.Path)
	view.Error(w, r, http.StatusInternalServerError)
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}

// safeNext keeps only local redirect targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

func formInt(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue(key)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.PostFormValue(key)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}
