package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/usecase"
	"clinic-management-service/pkg/response"
	"clinic-management-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientRouter(mock *mockPatientUsecase) *mux.Router {
	h := NewPatientHandler(mock, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/patients", h.CreatePatient).Methods(http.MethodPost)
	r.HandleFunc("/patients", h.ListPatients).Methods(http.MethodGet)
	r.HandleFunc("/patients/{id}", h.GetPatient).Methods(http.MethodGet)
	r.HandleFunc("/patients/{id}", h.UpdatePatient).Methods(http.MethodPut)
	r.HandleFunc("/patients/{id}", h.DeletePatient).Methods(http.MethodDelete)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreatePatient(t *testing.T) {
	mock := &mockPatientUsecase{
		CreateFunc: func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			return &dto.PatientResponse{
				ID:        uuid.New(),
				Name:      req.Name,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		},
	}
	router := newPatientRouter(mock)

	body, _ := json.Marshal(dto.CreatePatientRequest{Name: "Jane Smith"})
	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestCreatePatientInvalidBody(t *testing.T) {
	router := newPatientRouter(&mockPatientUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePatientValidationFailure(t *testing.T) {
	router := newPatientRouter(&mockPatientUsecase{})

	// name too short
	body, _ := json.Marshal(dto.CreatePatientRequest{Name: "J"})
	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.NotNil(t, resp.Error)
}

func TestGetPatientInvalidID(t *testing.T) {
	router := newPatientRouter(&mockPatientUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/patients/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPatientNotFound(t *testing.T) {
	mock := &mockPatientUsecase{
		GetFunc: func(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}
	router := newPatientRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/patients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePatientInUse(t *testing.T) {
	mock := &mockPatientUsecase{
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return usecase.ErrPatientInUse
		},
	}
	router := newPatientRouter(mock)

	req := httptest.NewRequest(http.MethodDelete, "/patients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListPatients(t *testing.T) {
	var gotFilter *entity.PatientFilter
	var gotPage, gotLimit int
	mock := &mockPatientUsecase{
		ListFunc: func(ctx context.Context, filter *entity.PatientFilter, page, limit int) ([]dto.PatientResponse, int64, error) {
			gotFilter = filter
			gotPage = page
			gotLimit = limit
			return []dto.PatientResponse{{ID: uuid.New(), Name: "Jane Smith"}}, 23, nil
		},
	}
	router := newPatientRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/patients?page=2&limit=5&search=jane&gender=Female", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 5, gotLimit)
	require.NotNil(t, gotFilter)
	assert.Equal(t, "jane", gotFilter.Search)
	assert.Equal(t, "Female", gotFilter.Gender)

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 5, resp.Meta.Limit)
	assert.Equal(t, int64(23), resp.Meta.Total)
	assert.Equal(t, 5, resp.Meta.TotalPages)
}

func TestListPatientsDefaultsMeta(t *testing.T) {
	mock := &mockPatientUsecase{
		ListFunc: func(ctx context.Context, filter *entity.PatientFilter, page, limit int) ([]dto.PatientResponse, int64, error) {
			return nil, 0, nil
		},
	}
	router := newPatientRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.Limit)
	assert.Equal(t, 0, resp.Meta.TotalPages)
}
