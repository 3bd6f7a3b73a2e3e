package handler

import (
	"context"
	"errors"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/usecase"

	"github.com/google/uuid"
)

var _ usecase.PatientUsecase = (*mockPatientUsecase)(nil)

type mockPatientUsecase struct {
	CreateFunc func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	ListFunc   func(ctx context.Context, filter *entity.PatientFilter, page, limit int) ([]dto.PatientResponse, int64, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errors.New("CreateFunc not implemented in mock")
}

func (m *mockPatientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, errors.New("GetFunc not implemented in mock")
}

func (m *mockPatientUsecase) List(ctx context.Context, filter *entity.PatientFilter, page, limit int) ([]dto.PatientResponse, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, page, limit)
	}
	return nil, 0, errors.New("ListFunc not implemented in mock")
}

func (m *mockPatientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateFunc not implemented in mock")
}

func (m *mockPatientUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

var _ usecase.AuthUsecase = (*mockAuthUsecase)(nil)

type mockAuthUsecase struct {
	LoginFunc          func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	LogoutFunc         func(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshTokenFunc   func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUserFunc func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	RegisterUserFunc   func(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	ListRolesFunc      func(ctx context.Context) ([]dto.RoleResponse, error)
	GetRoleFunc        func(ctx context.Context, id int) (*dto.RoleResponse, error)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, errors.New("LoginFunc not implemented in mock")
}

func (m *mockAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accessTokenID, refreshTokenID)
	}
	return errors.New("LogoutFunc not implemented in mock")
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, req)
	}
	return nil, errors.New("RefreshTokenFunc not implemented in mock")
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetCurrentUserFunc != nil {
		return m.GetCurrentUserFunc(ctx, userID)
	}
	return nil, errors.New("GetCurrentUserFunc not implemented in mock")
}

func (m *mockAuthUsecase) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if m.RegisterUserFunc != nil {
		return m.RegisterUserFunc(ctx, req)
	}
	return nil, errors.New("RegisterUserFunc not implemented in mock")
}

func (m *mockAuthUsecase) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	if m.ListRolesFunc != nil {
		return m.ListRolesFunc(ctx)
	}
	return nil, errors.New("ListRolesFunc not implemented in mock")
}

func (m *mockAuthUsecase) GetRole(ctx context.Context, id int) (*dto.RoleResponse, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, id)
	}
	return nil, errors.New("GetRoleFunc not implemented in mock")
}
