package auth_test

import (
	"camping/infras/otel/mocks"
	authMocks "camping/internal/domains/auth/mocks"
	"camping/internal/domains/auth/model/dto"
	"camping/internal/handlers/auth"
	"camping/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const userID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func newRouter(t *testing.T) (*chi.Mux, *authMocks.MockAuth) {
	ctrl := gomock.NewController(t)
	svc := authMocks.NewMockAuth(ctrl)

	handler := auth.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *authMocks.MockAuth)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: `{"username":"camper","email":"camper@example.com","password":"secret1"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().
					Register(gomock.Any(), dto.RegisterRequest{Username: "camper", Email: "camper@example.com", Password: "secret1"}).
					Return(dto.RegisterResponse{UserID: userID}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"data":{"userId":"` + userID + `"}}`,
		},
		{
			name:      "invalid email",
			body:      `{"username":"camper","email":"not-an-email","password":"secret1"}`,
			setupMock: func(*authMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown role",
			body:      `{"username":"camper","email":"camper@example.com","password":"secret1","role":"root"}`,
			setupMock: func(*authMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed json",
			body:      `{"username":`,
			setupMock: func(*authMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"username":"camper","email":"camper@example.com","password":"secret1"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(dto.RegisterResponse{}, failure.Conflict("username or email already registered"))
			},
			wantCode: http.StatusConflict,
			wantBody: `{"error":"username or email already registered"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), dto.LoginRequest{Email: "camper@example.com", Password: "secret1"}).
			Return(dto.LoginResponse{Token: "signed"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"camper@example.com","password":"secret1"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"token":"signed"}}`, rec.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.InvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"camper@example.com","password":"wrong"}`))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	})
}

func TestHandler_UpdateProfile(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		body      string
		setupMock func(svc *authMocks.MockAuth)
		wantCode  int
	}{
		{
			name: "updated",
			id:   userID,
			body: `{"newPassword":"another1"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().
					UpdateProfile(gomock.Any(), userID, dto.UpdateProfileRequest{NewPassword: "another1"}).
					Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "bad id",
			id:        "42",
			body:      `{"username":"camper"}`,
			setupMock: func(*authMocks.MockAuth) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "forbidden",
			id:   userID,
			body: `{"username":"camper"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(failure.ResourceRestrictedError)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "missing user",
			id:   userID,
			body: `{"username":"camper"}`,
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(failure.NotFound("user not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.id, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
