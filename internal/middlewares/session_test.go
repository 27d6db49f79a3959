package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/sbilibin2017/teaflask/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSessionStore(ctrl)
	brewers := NewMockSessionBrewers(ctrl)

	store.EXPECT().Load(gomock.Any()).Return(&session.Session{})

	var got principal.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = principal.FromContext(r.Context())
	})

	rr := httptest.NewRecorder()
	SessionMiddleware(store, brewers)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, got.IsAuthenticated())
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSessionMiddleware_LoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSessionStore(ctrl)
	brewers := NewMockSessionBrewers(ctrl)

	s := &session.Session{BrewerID: 7}
	b := &models.Brewer{ID: 7, Confirmed: false}
	store.EXPECT().Load(gomock.Any()).Return(s)
	brewers.EXPECT().Brewer(gomock.Any(), int64(7)).Return(b, nil)
	brewers.EXPECT().Ping(gomock.Any(), b).Return(nil)
	store.EXPECT().Save(gomock.Any(), s).Return(nil)

	var got principal.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = principal.FromContext(r.Context())
		assert.Same(t, s, session.FromContext(r.Context()))
		w.Write([]byte("page"))
	})

	rr := httptest.NewRecorder()
	SessionMiddleware(store, brewers)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, got.IsAuthenticated())
	assert.Len(t, s.Flashes, 1)
	assert.Equal(t, UnconfirmedMessage, s.Flashes[0].Message)
}

func TestSessionMiddleware_UnconfirmedFlashedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSessionStore(ctrl)
	brewers := NewMockSessionBrewers(ctrl)

	s := &session.Session{BrewerID: 7, Flashes: []session.Flash{{Category: session.FlashWarning, Message: UnconfirmedMessage}}}
	b := &models.Brewer{ID: 7}
	store.EXPECT().Load(gomock.Any()).Return(s)
	brewers.EXPECT().Brewer(gomock.Any(), int64(7)).Return(b, nil)
	brewers.EXPECT().Ping(gomock.Any(), b).Return(errors.New("ignored"))
	store.EXPECT().Save(gomock.Any(), s).Return(nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	SessionMiddleware(store, brewers)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))

	assert.Len(t, s.Flashes, 1)
}

func TestSessionMiddleware_StaleBrewerLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockSessionStore(ctrl)
	brewers := NewMockSessionBrewers(ctrl)

	s := &session.Session{BrewerID: 9}
	store.EXPECT().Load(gomock.Any()).Return(s)
	brewers.EXPECT().Brewer(gomock.Any(), int64(9)).Return(nil, services.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "stale"})
	store.EXPECT().Save(gomock.Any(), s).Return(nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, principal.FromContext(r.Context()).IsAuthenticated())
	})
	SessionMiddleware(store, brewers)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, s.LoggedIn())
}

func TestSessionMiddleware_SavesBeforeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	brewers := NewMockSessionBrewers(ctrl)
	manager := session.NewManager("secret", false)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := session.FromContext(r.Context())
		s.AddFlash(session.FlashInfo, "You have been logged out.")
		http.Redirect(w, r, "/", http.StatusFound)
	})

	rr := httptest.NewRecorder()
	SessionMiddleware(manager, brewers)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	cookies := rr.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
	}
}
