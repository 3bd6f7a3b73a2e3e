package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-management-service/config"
	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/usecase"
	"clinic-management-service/pkg/jwt"
	"clinic-management-service/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func newAuthHandler(mock *mockAuthUsecase) *AuthHandler {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthHandler(mock, validator.NewValidator(), jwtService)
}

func TestLoginSuccess(t *testing.T) {
	mock := &mockAuthUsecase{
		LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return &dto.TokenResponse{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    900,
			}, nil
		},
	}
	h := newAuthHandler(mock)

	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@clinic.local", Password: "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestLoginInvalidCredentials(t *testing.T) {
	mock := &mockAuthUsecase{
		LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	h := newAuthHandler(mock)

	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@clinic.local", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginInactiveUser(t *testing.T) {
	mock := &mockAuthUsecase{
		LoginFunc: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrUserInactive
		},
	}
	h := newAuthHandler(mock)

	body, _ := json.Marshal(dto.LoginRequest{Email: "staff@clinic.local", Password: "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginValidationFailure(t *testing.T) {
	h := newAuthHandler(&mockAuthUsecase{})

	body, _ := json.Marshal(dto.LoginRequest{Email: "not-an-email"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	mock := &mockAuthUsecase{
		RegisterUserFunc: func(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrEmailAlreadyExists
		},
	}
	h := newAuthHandler(mock)

	body, _ := json.Marshal(dto.RegisterUserRequest{
		Email:    "admin@clinic.local",
		Password: "secret123",
		FullName: "Jane Smith",
		RoleID:   2,
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.RegisterUser(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRefreshTokenRevoked(t *testing.T) {
	mock := &mockAuthUsecase{
		RefreshTokenFunc: func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrTokenRevoked
		},
	}
	h := newAuthHandler(mock)

	body, _ := json.Marshal(dto.RefreshTokenRequest{RefreshToken: "some-token"})
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh-token", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCurrentUserWithoutContext(t *testing.T) {
	h := newAuthHandler(&mockAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
