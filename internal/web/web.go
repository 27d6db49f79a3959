// Package web renders the HTML pages of teaflask from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/markdown"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/session"
	"github.com/sbilibin2017/teaflask/internal/validation"
)

//go:embed templates
var templateFS embed.FS

// TimeFormat is how timestamps are shown on pages.
const TimeFormat = "2006-01-02 15:04"

// Page is what a handler hands to the renderer. Principal and Flashes are
// filled from the request.
type Page struct {
	Title     string
	Form      any
	Errors    validation.Errors
	Data      map[string]any
	Principal principal.Principal
	Flashes   []session.Flash
}

// Renderer executes page templates inside the shared layout.
type Renderer struct {
	pages         map[string]*template.Template
	secureAvatars bool
}

// NewRenderer parses every page under templates/. secureAvatars makes
// gravatar links use HTTPS.
func NewRenderer(secureAvatars bool) (*Renderer, error) {
	rd := &Renderer{pages: map[string]*template.Template{}, secureAvatars: secureAvatars}

	md := markdown.New()
	funcs := template.FuncMap{
		"markdown": md.Render,
		"datetime": datetime,
		"perm":     permission,
		"gravatar": func(b *models.Brewer, size int) string {
			return b.Gravatar(size, rd.secureAvatars)
		},
	}

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(path, "templates/partials/") || path == "templates/layout.html" {
			return nil
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials/*.html", path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		rd.pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rd, nil
}

// Render writes the named page with the given status. The output is built
// in memory first so a template failure still yields a clean 500.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, page Page) {
	t, ok := rd.pages[name]
	if !ok {
		logger.Log.Errorw("unknown template", "name", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page.Principal = principal.FromContext(r.Context())
	page.Flashes = session.FromContext(r.Context()).PopFlashes()
	if page.Data == nil {
		page.Data = map[string]any{}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		logger.Log.Errorw("failed to render template", "name", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Error renders the error page for status.
func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, status int) {
	rd.Render(w, r, status, "error", Page{
		Title: http.StatusText(status),
		Data: map[string]any{
			"status":  status,
			"message": errorMessage(status),
		},
	})
}

func errorMessage(status int) string {
	switch status {
	case http.StatusForbidden:
		return "You are not allowed to see this page."
	case http.StatusNotFound:
		return "The page you are looking for does not exist."
	default:
		return "Something went wrong on our side."
	}
}

func datetime(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(TimeFormat)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.UTC().Format(TimeFormat)
	default:
		return ""
	}
}

func permission(name string) (models.Permission, error) {
	switch name {
	case "drink":
		return models.PermissionDrink, nil
	case "brew":
		return models.PermissionBrew, nil
	case "moderate":
		return models.PermissionModerate, nil
	case "administer":
		return models.PermissionAdminister, nil
	}
	return 0, fmt.Errorf("unknown permission %q", name)
}
