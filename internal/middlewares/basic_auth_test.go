package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.Brewer{ID: 7, Username: "alice", RoleID: 1, Permissions: 0x03}

	tests := []struct {
		name             string
		setAuth          bool
		mockSetup        func(m *MockBasicAuthenticator)
		expectedStatus   int
		expectedMessage  string
		expectNextCalled bool
	}{
		{
			name:             "NoCredentials",
			setAuth:          false,
			mockSetup:        func(m *MockBasicAuthenticator) {},
			expectedStatus:   http.StatusForbidden,
			expectedMessage:  "Use Basic HTTP Auth",
			expectNextCalled: false,
		},
		{
			name:    "UnknownUser",
			setAuth: true,
			mockSetup: func(m *MockBasicAuthenticator) {
				m.EXPECT().AuthenticateBasic(gomock.Any(), "alice", "cat").
					Return(nil, services.ErrUserDoesNotExist)
			},
			expectedStatus:   http.StatusForbidden,
			expectedMessage:  "Invalid username",
			expectNextCalled: false,
		},
		{
			name:    "WrongPassword",
			setAuth: true,
			mockSetup: func(m *MockBasicAuthenticator) {
				m.EXPECT().AuthenticateBasic(gomock.Any(), "alice", "cat").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectedMessage:  "Invalid Credentials",
			expectNextCalled: false,
		},
		{
			name:    "StoreError",
			setAuth: true,
			mockSetup: func(m *MockBasicAuthenticator) {
				m.EXPECT().AuthenticateBasic(gomock.Any(), "alice", "cat").
					Return(nil, errors.New("db down"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name:    "Valid",
			setAuth: true,
			mockSetup: func(m *MockBasicAuthenticator) {
				m.EXPECT().AuthenticateBasic(gomock.Any(), "alice", "cat").Return(alice, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockBasicAuthenticator(ctrl)
			tt.mockSetup(m)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				p := principal.FromContext(r.Context())
				assert.True(t, p.IsAuthenticated())
				assert.Equal(t, alice, p.Brewer())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/pots/", nil)
			if tt.setAuth {
				req.SetBasicAuth("alice", "cat")
			}
			rr := httptest.NewRecorder()

			BasicAuthMiddleware(m)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedMessage != "" {
				var body models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedMessage, body.Message)
			}
		})
	}
}
