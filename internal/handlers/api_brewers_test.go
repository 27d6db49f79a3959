package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/sbilibin2017/teaflask/internal/validation"
)

func TestGetBrewerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := userBrewer()
	b.MemberSince = brewedAt
	b.LastSeen = brewedAt
	b.AvatarHash = models.AvatarHash(b.Email)

	mockSvc := NewMockBrewerReader(ctrl)
	mockSvc.EXPECT().Get(gomock.Any(), int64(1)).Return(b, nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/brewers/1/", nil), map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	NewGetBrewerHandler(mockSvc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BrewerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "http://example.com/api/v1/brewers/1/", resp.URL)
	assert.Equal(t, "http://example.com/api/v1/brewers/1/pots/", resp.Pots)
	assert.Equal(t, models.RoleUser, resp.Role)
	assert.Equal(t, "2024-05-01 09:30:00", resp.MemberSince)
	assert.Contains(t, resp.Avatar, b.AvatarHash)
}

func TestCreateBrewerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	badRole := validation.Errors{}
	badRole.Add("role", "Invalid role.")

	tests := []struct {
		name             string
		body             string
		mockSetup        func(m *MockBrewerCreator)
		expectedCode     int
		expectedLocation string
	}{
		{
			name: "success",
			body: `{"email":"jane@example.com","username":"jane","password":"secret","role":"Moderator"}`,
			mockSetup: func(m *MockBrewerCreator) {
				m.EXPECT().Create(gomock.Any(), models.BrewerInput{
					Email: "jane@example.com", Username: "jane", Password: "secret", Role: "Moderator",
				}).Return(&models.Brewer{ID: 2, Email: "jane@example.com", Username: "jane", RoleName: models.RoleModerator}, nil)
			},
			expectedCode:     http.StatusCreated,
			expectedLocation: "http://example.com/api/v1/brewers/2/",
		},
		{
			name: "unknown role",
			body: `{"email":"jane@example.com","username":"jane","password":"secret","role":"Nope"}`,
			mockSetup: func(m *MockBrewerCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &services.ValidationError{Fields: badRole})
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty body",
			mockSetup:    func(m *MockBrewerCreator) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBrewerCreator(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/brewers/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			NewCreateBrewerHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
		})
	}
}

func TestListBrewersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := pagination.Params{Page: 1, Limit: 10}
	mockSvc := NewMockBrewerReader(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), p).Return(pagination.Result[models.Brewer]{
		Items:  []models.Brewer{*userBrewer()},
		Total:  1,
		Params: p,
	}, nil)

	rec := httptest.NewRecorder()
	NewListBrewersHandler(mockSvc, 10).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/brewers/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BrewerListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Brewers, 1)
	assert.Equal(t, "john", resp.Brewers[0].Username)
	assert.Nil(t, resp.Prev)
	assert.Nil(t, resp.Next)
}

func TestListBrewerPotsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brewers := NewMockBrewerReader(ctrl)
	pots := NewMockPotReader(ctrl)
	p := pagination.Params{Page: 1, Limit: 2}
	brewers.EXPECT().Get(gomock.Any(), int64(1)).Return(userBrewer(), nil)
	pots.EXPECT().List(gomock.Any(), models.PotFilter{BrewerID: 1}, p).Return(pageOf(samplePots(3), p), nil)

	req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/brewers/1/pots/?limit=2", nil), map[string]string{"id": "1"})
	rec := httptest.NewRecorder()
	NewListBrewerPotsHandler(brewers, pots, 10).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.PotListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Pots, 2)
	assert.Equal(t, "http://example.com/api/v1/brewers/1/pots/?limit=2&page=2", *resp.Next)
}
