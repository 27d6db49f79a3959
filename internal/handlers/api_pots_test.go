package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/sbilibin2017/teaflask/internal/session"
	"github.com/sbilibin2017/teaflask/internal/validation"
)

// pageOf slices all the way the repository would.
func pageOf(all []models.Pot, p pagination.Params) pagination.Result[models.Pot] {
	items := []models.Pot{}
	for i := p.Offset(); i < len(all) && i < p.Offset()+p.Limit; i++ {
		items = append(items, all[i])
	}
	return pagination.Result[models.Pot]{Items: items, Total: len(all), Params: p}
}

func TestListPotsHandler_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	all := samplePots(5)

	tests := []struct {
		name      string
		url       string
		params    pagination.Params
		wantIDs   []int64
		wantPrev  *string
		wantNext  *string
		wantCount int
	}{
		{
			name:      "first page",
			url:       "/api/v1/pots/?page=1&limit=2",
			params:    pagination.Params{Page: 1, Limit: 2},
			wantIDs:   []int64{5, 4},
			wantNext:  strPtr("http://example.com/api/v1/pots/?limit=2&page=2"),
			wantCount: 5,
		},
		{
			name:      "last page",
			url:       "/api/v1/pots/?page=3&limit=2",
			params:    pagination.Params{Page: 3, Limit: 2},
			wantIDs:   []int64{1},
			wantPrev:  strPtr("http://example.com/api/v1/pots/?limit=2&page=2"),
			wantCount: 5,
		},
		{
			name:      "past the end",
			url:       "/api/v1/pots/?page=9&limit=2",
			params:    pagination.Params{Page: 9, Limit: 2},
			wantIDs:   []int64{},
			wantPrev:  strPtr("http://example.com/api/v1/pots/?limit=2&page=8"),
			wantCount: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPotReader(ctrl)
			mockSvc.EXPECT().
				List(gomock.Any(), models.PotFilter{}, tt.params).
				Return(pageOf(all, tt.params), nil)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			NewListPotsHandler(mockSvc, 10).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp models.PotListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

			ids := []int64{}
			for _, p := range resp.Pots {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantPrev, resp.Prev)
			assert.Equal(t, tt.wantNext, resp.Next)
			assert.Equal(t, tt.wantCount, resp.Count)
		})
	}
}

func TestListPotsHandler_NullLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPotReader(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), models.PotFilter{}, pagination.Params{Page: 1, Limit: 10}).
		Return(pagination.Result[models.Pot]{Items: []models.Pot{}, Params: pagination.Params{Page: 1, Limit: 10}}, nil)

	rec := httptest.NewRecorder()
	NewListPotsHandler(mockSvc, 10).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pots/", nil))

	assert.JSONEq(t, `{"pots":[],"prev":null,"next":null,"count":0}`, rec.Body.String())
}

func TestGetPotHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	drank := brewedAt.Add(time.Hour)

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockPotReader)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			id:   "7",
			mockSetup: func(m *MockPotReader) {
				m.EXPECT().Get(gomock.Any(), int64(7)).Return(&models.Pot{
					ID: 7, BrewedAt: brewedAt, DrankAt: &drank, TeaID: 3, TeaName: "Sencha", BrewerID: 2, BrewerUsername: "john",
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{
				"id": 7,
				"url": "http://example.com/api/v1/pots/7",
				"brewed_at": "2024-05-01 09:30:00",
				"drank_at": "2024-05-01 10:30:00",
				"drinkable": false,
				"tea": "http://example.com/api/v1/teas/3",
				"tea_name": "Sencha",
				"brewer": "http://example.com/api/v1/brewers/2/",
				"brewer_username": "john"
			}`,
		},
		{
			name: "unknown id",
			id:   "99",
			mockSetup: func(m *MockPotReader) {
				m.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"not found","message":"Resource not found"}`,
		},
		{
			name:         "malformed id",
			id:           "abc",
			mockSetup:    func(m *MockPotReader) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"not found","message":"Resource not found"}`,
		},
		{
			name: "internal error",
			id:   "1",
			mockSetup: func(m *MockPotReader) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal server error","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPotReader(ctrl)
			tt.mockSetup(mockSvc)

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/pots/"+tt.id, nil), map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			NewGetPotHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestCreatePotHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	brewer := userBrewer()
	unknownTea := validation.Errors{}
	unknownTea.Add("tea", "Not a valid tea")

	tests := []struct {
		name             string
		body             string
		mockSetup        func(m *MockPotBrewer)
		expectedCode     int
		expectedLocation string
		expectedBody     string
	}{
		{
			name: "success",
			body: `{"tea":3}`,
			mockSetup: func(m *MockPotBrewer) {
				m.EXPECT().Brew(gomock.Any(), brewer, models.PotInput{Tea: 3}).Return(&models.Pot{
					ID: 11, BrewedAt: brewedAt, TeaID: 3, TeaName: "Sencha", BrewerID: 1, BrewerUsername: "john",
				}, nil)
			},
			expectedCode:     http.StatusCreated,
			expectedLocation: "http://example.com/api/v1/pots/11",
			expectedBody: `{
				"id": 11,
				"url": "http://example.com/api/v1/pots/11",
				"brewed_at": "2024-05-01 09:30:00",
				"drank_at": null,
				"drinkable": true,
				"tea": "http://example.com/api/v1/teas/3",
				"tea_name": "Sencha",
				"brewer": "http://example.com/api/v1/brewers/1/",
				"brewer_username": "john"
			}`,
		},
		{
			name:         "empty body",
			body:         "",
			mockSetup:    func(m *MockPotBrewer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad request","message":"No JSON data was given"}`,
		},
		{
			name: "unknown tea",
			body: `{"tea":42}`,
			mockSetup: func(m *MockPotBrewer) {
				m.EXPECT().Brew(gomock.Any(), brewer, models.PotInput{Tea: 42}).
					Return(nil, &services.ValidationError{Fields: unknownTea})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"bad request","message":"Data not given or invalid","validation_errors":{"tea":["Not a valid tea"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPotBrewer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/pots/", strings.NewReader(tt.body))
			req = asBrewer(req, brewer, &session.Session{})
			rec := httptest.NewRecorder()

			NewCreatePotHandler(mockSvc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func strPtr(s string) *string {
	return &s
}
