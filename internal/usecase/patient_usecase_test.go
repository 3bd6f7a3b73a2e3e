package usecase

import (
	"context"
	"testing"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientUsecase(patientRepo *mockPatientRepo, appointmentRepo *mockAppointmentRepo, invoiceRepo *mockInvoiceRepo) PatientUsecase {
	return NewPatientUsecase(testDB(), testLogger(), patientRepo, appointmentRepo, invoiceRepo, &mockActivityService{})
}

func TestPatientListNormalizesPagination(t *testing.T) {
	var gotPage, gotLimit int
	patientRepo := &mockPatientRepo{
		FindAllFunc: func(filter *entity.PatientFilter, page, limit int) ([]entity.Patient, int64, error) {
			gotPage, gotLimit = page, limit
			return []entity.Patient{}, 0, nil
		},
	}
	u := newPatientUsecase(patientRepo, &mockAppointmentRepo{}, &mockInvoiceRepo{})

	_, _, err := u.List(context.Background(), &entity.PatientFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 10, gotLimit)

	_, _, err = u.List(context.Background(), &entity.PatientFilter{}, 4, 1000)
	require.NoError(t, err)
	assert.Equal(t, 4, gotPage)
	assert.Equal(t, 100, gotLimit)
}

func TestPatientListReturnsTotal(t *testing.T) {
	patientRepo := &mockPatientRepo{
		FindAllFunc: func(filter *entity.PatientFilter, page, limit int) ([]entity.Patient, int64, error) {
			return []entity.Patient{{ID: uuid.New(), Name: "Jane Doe"}}, 42, nil
		},
	}
	u := newPatientUsecase(patientRepo, &mockAppointmentRepo{}, &mockInvoiceRepo{})

	patients, total, err := u.List(context.Background(), &entity.PatientFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, patients, 1)
	assert.Equal(t, int64(42), total)
	assert.Equal(t, "Jane Doe", patients[0].Name)
}

func TestPatientGetNotFound(t *testing.T) {
	patientRepo := &mockPatientRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Patient, error) {
			return nil, nil
		},
	}
	u := newPatientUsecase(patientRepo, &mockAppointmentRepo{}, &mockInvoiceRepo{})

	_, err := u.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientDeleteBlockedByAppointments(t *testing.T) {
	patientID := uuid.New()
	patientRepo := &mockPatientRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Name: "John Smith"}, nil
		},
	}
	appointmentRepo := &mockAppointmentRepo{
		CountByPatientIDFunc: func(id uuid.UUID) (int64, error) {
			return 2, nil
		},
	}
	u := newPatientUsecase(patientRepo, appointmentRepo, &mockInvoiceRepo{})

	err := u.Delete(context.Background(), patientID)
	assert.ErrorIs(t, err, ErrPatientInUse)
}

func TestPatientDeleteBlockedByInvoices(t *testing.T) {
	patientRepo := &mockPatientRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Name: "John Smith"}, nil
		},
	}
	appointmentRepo := &mockAppointmentRepo{
		CountByPatientIDFunc: func(id uuid.UUID) (int64, error) {
			return 0, nil
		},
	}
	invoiceRepo := &mockInvoiceRepo{
		CountByPatientIDFunc: func(id uuid.UUID) (int64, error) {
			return 1, nil
		},
	}
	u := newPatientUsecase(patientRepo, appointmentRepo, invoiceRepo)

	err := u.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientInUse)
}

func TestPatientUpdateKeepsUnsetFields(t *testing.T) {
	patientID := uuid.New()
	var updated *entity.Patient
	patientRepo := &mockPatientRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{
				ID:         id,
				Name:       "John Smith",
				Email:      "john@clinic.local",
				Phone:      "555-0101",
				Gender:     "Male",
				Address:    "12 Main St",
				BloodGroup: "O+",
			}, nil
		},
		UpdateFunc: func(patient *entity.Patient) error {
			updated = patient
			return nil
		},
	}
	u := newPatientUsecase(patientRepo, &mockAppointmentRepo{}, &mockInvoiceRepo{})

	// The detached handle cannot commit, so the merge is asserted on the
	// entity handed to the repository.
	u.Update(context.Background(), patientID, &dto.UpdatePatientRequest{Name: strPtr("Johnny Smith")})

	require.NotNil(t, updated)
	assert.Equal(t, "Johnny Smith", updated.Name)
	assert.Equal(t, "john@clinic.local", updated.Email)
	assert.Equal(t, "555-0101", updated.Phone)
	assert.Equal(t, "Male", updated.Gender)
	assert.Equal(t, "12 Main St", updated.Address)
	assert.Equal(t, "O+", updated.BloodGroup)
}

func TestPatientUpdateInvalidDate(t *testing.T) {
	patientRepo := &mockPatientRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Name: "John Smith"}, nil
		},
	}
	u := newPatientUsecase(patientRepo, &mockAppointmentRepo{}, &mockInvoiceRepo{})

	_, err := u.Update(context.Background(), uuid.New(), &dto.UpdatePatientRequest{DateOfBirth: strPtr("31-12-1990")})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestPatientDeleteNotFound(t *testing.T) {
	patientRepo := &mockPatientRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Patient, error) {
			return nil, nil
		},
	}
	u := newPatientUsecase(patientRepo, &mockAppointmentRepo{}, &mockInvoiceRepo{})

	err := u.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
