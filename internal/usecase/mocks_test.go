package usecase

import (
	"context"
	"errors"
	"io"

	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/domain/repository"
	"clinic-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errNotImplemented = errors.New("not implemented in mock")

// testDB returns a detached gorm handle. The repositories under test are
// mocked and never touch a connection, so these tests exercise read paths
// and pre-commit failure paths only.
func testDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func strPtr(s string) *string {
	return &s
}

type mockPatientRepo struct {
	FindByIDFunc func(id uuid.UUID) (*entity.Patient, error)
	FindAllFunc  func(filter *entity.PatientFilter, page, limit int) ([]entity.Patient, int64, error)
	UpdateFunc   func(patient *entity.Patient) error
}

var _ repository.PatientRepository = (*mockPatientRepo)(nil)

func (m *mockPatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	return errNotImplemented
}

func (m *mockPatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	if m.FindByIDFunc == nil {
		return nil, errNotImplemented
	}
	return m.FindByIDFunc(id)
}

func (m *mockPatientRepo) FindAll(db *gorm.DB, filter *entity.PatientFilter, page, limit int) ([]entity.Patient, int64, error) {
	if m.FindAllFunc == nil {
		return nil, 0, errNotImplemented
	}
	return m.FindAllFunc(filter, page, limit)
}

func (m *mockPatientRepo) Update(db *gorm.DB, patient *entity.Patient) error {
	if m.UpdateFunc == nil {
		return errNotImplemented
	}
	return m.UpdateFunc(patient)
}

func (m *mockPatientRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockPatientRepo) Count(db *gorm.DB) (int64, error) {
	return 0, errNotImplemented
}

type mockAppointmentRepo struct {
	CountByPatientIDFunc func(patientID uuid.UUID) (int64, error)
}

var _ repository.AppointmentRepository = (*mockAppointmentRepo)(nil)

func (m *mockAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return errNotImplemented
}

func (m *mockAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return nil, errNotImplemented
}

func (m *mockAppointmentRepo) FindAll(db *gorm.DB, filter *entity.AppointmentFilter, page, limit int) ([]entity.Appointment, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockAppointmentRepo) FindRecent(db *gorm.DB, limit int) ([]entity.Appointment, error) {
	return nil, errNotImplemented
}

func (m *mockAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return errNotImplemented
}

func (m *mockAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockAppointmentRepo) Count(db *gorm.DB) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockAppointmentRepo) CountByDate(db *gorm.DB, date string) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockAppointmentRepo) CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	if m.CountByPatientIDFunc == nil {
		return 0, errNotImplemented
	}
	return m.CountByPatientIDFunc(patientID)
}

func (m *mockAppointmentRepo) CountByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

type mockInvoiceRepo struct {
	FindByIDFunc         func(id uuid.UUID) (*entity.Invoice, error)
	UpdateFunc           func(invoice *entity.Invoice) error
	CountByPatientIDFunc func(patientID uuid.UUID) (int64, error)
}

var _ repository.InvoiceRepository = (*mockInvoiceRepo)(nil)

func (m *mockInvoiceRepo) Create(db *gorm.DB, invoice *entity.Invoice) error {
	return errNotImplemented
}

func (m *mockInvoiceRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Invoice, error) {
	if m.FindByIDFunc == nil {
		return nil, errNotImplemented
	}
	return m.FindByIDFunc(id)
}

func (m *mockInvoiceRepo) FindAll(db *gorm.DB, filter *entity.InvoiceFilter, page, limit int) ([]entity.Invoice, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockInvoiceRepo) Update(db *gorm.DB, invoice *entity.Invoice) error {
	if m.UpdateFunc == nil {
		return errNotImplemented
	}
	return m.UpdateFunc(invoice)
}

func (m *mockInvoiceRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockInvoiceRepo) CountByStatus(db *gorm.DB, status string) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockInvoiceRepo) CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	if m.CountByPatientIDFunc == nil {
		return 0, errNotImplemented
	}
	return m.CountByPatientIDFunc(patientID)
}

func (m *mockInvoiceRepo) SumTotalByStatus(db *gorm.DB, status string) (decimal.Decimal, error) {
	return decimal.Zero, errNotImplemented
}

type mockBloodDonorRepo struct{}

var _ repository.BloodDonorRepository = (*mockBloodDonorRepo)(nil)

func (m *mockBloodDonorRepo) Create(db *gorm.DB, donor *entity.BloodDonor) error {
	return errNotImplemented
}

func (m *mockBloodDonorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodDonor, error) {
	return nil, errNotImplemented
}

func (m *mockBloodDonorRepo) FindAll(db *gorm.DB, filter *entity.BloodDonorFilter, page, limit int) ([]entity.BloodDonor, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockBloodDonorRepo) Update(db *gorm.DB, donor *entity.BloodDonor) error {
	return errNotImplemented
}

func (m *mockBloodDonorRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

type mockBloodUnitRepo struct {
	FindByIDFunc    func(id uuid.UUID) (*entity.BloodUnit, error)
	FindByTypeFunc  func(bloodType string) ([]entity.BloodUnit, error)
	StockCountsFunc func() ([]entity.BloodStockCount, error)
}

var _ repository.BloodUnitRepository = (*mockBloodUnitRepo)(nil)

func (m *mockBloodUnitRepo) Create(db *gorm.DB, unit *entity.BloodUnit) error {
	return errNotImplemented
}

func (m *mockBloodUnitRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodUnit, error) {
	if m.FindByIDFunc == nil {
		return nil, errNotImplemented
	}
	return m.FindByIDFunc(id)
}

func (m *mockBloodUnitRepo) FindAll(db *gorm.DB, filter *entity.BloodUnitFilter, page, limit int) ([]entity.BloodUnit, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockBloodUnitRepo) FindByType(db *gorm.DB, bloodType string) ([]entity.BloodUnit, error) {
	if m.FindByTypeFunc == nil {
		return nil, errNotImplemented
	}
	return m.FindByTypeFunc(bloodType)
}

func (m *mockBloodUnitRepo) StockCounts(db *gorm.DB) ([]entity.BloodStockCount, error) {
	if m.StockCountsFunc == nil {
		return nil, errNotImplemented
	}
	return m.StockCountsFunc()
}

func (m *mockBloodUnitRepo) Update(db *gorm.DB, unit *entity.BloodUnit) error {
	return errNotImplemented
}

func (m *mockBloodUnitRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockBloodUnitRepo) CountByStatus(db *gorm.DB, status string) (int64, error) {
	return 0, errNotImplemented
}

type mockBloodIssueRepo struct{}

var _ repository.BloodIssueRepository = (*mockBloodIssueRepo)(nil)

func (m *mockBloodIssueRepo) Create(db *gorm.DB, issue *entity.BloodIssue) error {
	return errNotImplemented
}

func (m *mockBloodIssueRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodIssue, error) {
	return nil, errNotImplemented
}

func (m *mockBloodIssueRepo) FindAll(db *gorm.DB, page, limit int) ([]entity.BloodIssue, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockBloodIssueRepo) Update(db *gorm.DB, issue *entity.BloodIssue) error {
	return errNotImplemented
}

func (m *mockBloodIssueRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

type mockRoomRepo struct {
	FindByIDFunc func(id uuid.UUID) (*entity.Room, error)
}

var _ repository.RoomRepository = (*mockRoomRepo)(nil)

func (m *mockRoomRepo) Create(db *gorm.DB, room *entity.Room) error {
	return errNotImplemented
}

func (m *mockRoomRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	if m.FindByIDFunc == nil {
		return nil, errNotImplemented
	}
	return m.FindByIDFunc(id)
}

func (m *mockRoomRepo) FindAll(db *gorm.DB, filter *entity.RoomFilter, page, limit int) ([]entity.Room, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockRoomRepo) Update(db *gorm.DB, room *entity.Room) error {
	return errNotImplemented
}

func (m *mockRoomRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockRoomRepo) CountByStatus(db *gorm.DB, status string) (int64, error) {
	return 0, errNotImplemented
}

type mockRoomAllotmentRepo struct {
	CountActiveByRoomIDFunc func(roomID uuid.UUID) (int64, error)
}

var _ repository.RoomAllotmentRepository = (*mockRoomAllotmentRepo)(nil)

func (m *mockRoomAllotmentRepo) Create(db *gorm.DB, allotment *entity.RoomAllotment) error {
	return errNotImplemented
}

func (m *mockRoomAllotmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RoomAllotment, error) {
	return nil, errNotImplemented
}

func (m *mockRoomAllotmentRepo) FindAll(db *gorm.DB, filter *entity.RoomAllotmentFilter, page, limit int) ([]entity.RoomAllotment, int64, error) {
	return nil, 0, errNotImplemented
}

func (m *mockRoomAllotmentRepo) Update(db *gorm.DB, allotment *entity.RoomAllotment) error {
	return errNotImplemented
}

func (m *mockRoomAllotmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

func (m *mockRoomAllotmentRepo) CountActiveByRoomID(db *gorm.DB, roomID uuid.UUID) (int64, error) {
	if m.CountActiveByRoomIDFunc == nil {
		return 0, errNotImplemented
	}
	return m.CountActiveByRoomIDFunc(roomID)
}

func (m *mockRoomAllotmentRepo) CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	return 0, errNotImplemented
}

type mockActivityService struct{}

var _ service.ActivityService = (*mockActivityService)(nil)

func (m *mockActivityService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, newValue interface{}) error {
	return nil
}

func (m *mockActivityService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, oldValue, newValue interface{}) error {
	return nil
}

func (m *mockActivityService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, oldValue interface{}) error {
	return nil
}

func (m *mockActivityService) LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	return nil
}
