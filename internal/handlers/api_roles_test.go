package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/services"
)

func TestGetRoleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockRoleReader)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			id:   "1",
			mockSetup: func(m *MockRoleReader) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.Role{
					ID: 1, Name: models.RoleUser, Default: true, Permissions: models.PermissionDrink | models.PermissionBrew,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"id": 1,
				"url": "http://example.com/api/v1/roles/1/",
				"name": "User",
				"default": true,
				"permissions": 3,
				"brewers": "http://example.com/api/v1/roles/1/brewers/"
			}`,
		},
		{
			name: "unknown role",
			id:   "8",
			mockSetup: func(m *MockRoleReader) {
				m.EXPECT().Get(gomock.Any(), int64(8)).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"not found","message":"Resource not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRoleReader(ctrl)
			tt.mockSetup(mockSvc)

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/roles/"+tt.id+"/", nil), map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()
			NewGetRoleHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestListRolesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := pagination.Params{Page: 1, Limit: 10}
	mockSvc := NewMockRoleReader(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), p).Return(pagination.Result[models.Role]{
		Items:  []models.Role{{ID: 1, Name: models.RoleUser}, {ID: 2, Name: models.RoleModerator}, {ID: 3, Name: models.RoleAdministrator}},
		Total:  3,
		Params: p,
	}, nil)

	rec := httptest.NewRecorder()
	NewListRolesHandler(mockSvc, 10).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/roles/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.RoleListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Roles, 3)
	assert.Equal(t, 3, resp.Count)
}

func TestListRoleBrewersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown role", func(t *testing.T) {
		mockSvc := NewMockRoleReader(ctrl)
		mockSvc.EXPECT().Brewers(gomock.Any(), int64(4), gomock.Any()).
			Return(pagination.Result[models.Brewer]{}, services.ErrNotFound)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/roles/4/brewers/", nil), map[string]string{"id": "4"})
		rec := httptest.NewRecorder()
		NewListRoleBrewersHandler(mockSvc, 10).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("brewers of the role", func(t *testing.T) {
		p := pagination.Params{Page: 1, Limit: 10}
		mockSvc := NewMockRoleReader(ctrl)
		mockSvc.EXPECT().Brewers(gomock.Any(), int64(1), p).Return(pagination.Result[models.Brewer]{
			Items:  []models.Brewer{*userBrewer()},
			Total:  1,
			Params: p,
		}, nil)

		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/roles/1/brewers/", nil), map[string]string{"id": "1"})
		rec := httptest.NewRecorder()
		NewListRoleBrewersHandler(mockSvc, 10).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.BrewerListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Brewers, 1)
		assert.Equal(t, "http://example.com/api/v1/brewers/1/", resp.Brewers[0].URL)
	})
}
