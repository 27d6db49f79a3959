package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/session"
	"github.com/sbilibin2017/teaflask/internal/web"
)

var brewedAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

// withURLParams attaches chi URL parameters to req.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// asBrewer attaches an authenticated principal and a session to req.
func asBrewer(req *http.Request, b *models.Brewer, s *session.Session) *http.Request {
	ctx := principal.WithPrincipal(req.Context(), principal.NewAuthenticated(b))
	ctx = session.WithSession(ctx, s)
	return req.WithContext(ctx)
}

func userBrewer() *models.Brewer {
	return &models.Brewer{
		ID:          1,
		Email:       "john@example.com",
		Username:    "john",
		RoleID:      1,
		RoleName:    models.RoleUser,
		Confirmed:   true,
		Permissions: models.PermissionDrink | models.PermissionBrew,
	}
}

func newView(t *testing.T) *web.Renderer {
	t.Helper()
	view, err := web.NewRenderer(false)
	require.NoError(t, err)
	return view
}

func samplePots(n int) []models.Pot {
	pots := make([]models.Pot, 0, n)
	for i := n; i > 0; i-- {
		pots = append(pots, models.Pot{
			ID:             int64(i),
			BrewedAt:       brewedAt.Add(time.Duration(i) * time.Minute),
			TeaID:          1,
			TeaName:        "Sencha",
			BrewerID:       1,
			BrewerUsername: "john",
		})
	}
	return pots
}
