package usecase

import (
	"context"
	"time"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recentAppointmentsLimit = 5

type DashboardUsecase interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	staffRepo       repository.StaffRepository
	appointmentRepo repository.AppointmentRepository
	invoiceRepo     repository.InvoiceRepository
	roomRepo        repository.RoomRepository
	unitRepo        repository.BloodUnitRepository
	ambulanceRepo   repository.AmbulanceRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	staffRepo repository.StaffRepository,
	appointmentRepo repository.AppointmentRepository,
	invoiceRepo repository.InvoiceRepository,
	roomRepo repository.RoomRepository,
	unitRepo repository.BloodUnitRepository,
	ambulanceRepo repository.AmbulanceRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		staffRepo:       staffRepo,
		appointmentRepo: appointmentRepo,
		invoiceRepo:     invoiceRepo,
		roomRepo:        roomRepo,
		unitRepo:        unitRepo,
		ambulanceRepo:   ambulanceRepo,
	}
}

func (u *dashboardUsecase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	db := u.db.WithContext(ctx)
	stats := &dto.DashboardStatsResponse{}

	var err error
	if stats.TotalPatients, err = u.patientRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	if stats.TotalDoctors, err = u.doctorRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	if stats.TotalStaff, err = u.staffRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count staff: %+v", err)
		return nil, err
	}
	if stats.TotalAppointments, err = u.appointmentRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	if stats.TodayAppointments, err = u.appointmentRepo.CountByDate(db, today); err != nil {
		u.log.Warnf("Failed to count today appointments: %+v", err)
		return nil, err
	}

	if stats.TotalRevenue, err = u.invoiceRepo.SumTotalByStatus(db, entity.InvoiceStatusPaid); err != nil {
		u.log.Warnf("Failed to sum paid invoices: %+v", err)
		return nil, err
	}
	if stats.PendingInvoices, err = u.invoiceRepo.CountByStatus(db, entity.InvoiceStatusPending); err != nil {
		u.log.Warnf("Failed to count pending invoices: %+v", err)
		return nil, err
	}

	if stats.AvailableRooms, err = u.roomRepo.CountByStatus(db, entity.RoomStatusAvailable); err != nil {
		u.log.Warnf("Failed to count available rooms: %+v", err)
		return nil, err
	}
	if stats.AvailableBloodUnits, err = u.unitRepo.CountByStatus(db, entity.BloodUnitStatusAvailable); err != nil {
		u.log.Warnf("Failed to count available blood units: %+v", err)
		return nil, err
	}
	if stats.AvailableAmbulances, err = u.ambulanceRepo.CountByStatus(db, entity.AmbulanceStatusAvailable); err != nil {
		u.log.Warnf("Failed to count available ambulances: %+v", err)
		return nil, err
	}

	recent, err := u.appointmentRepo.FindRecent(db, recentAppointmentsLimit)
	if err != nil {
		u.log.Warnf("Failed to find recent appointments: %+v", err)
		return nil, err
	}
	stats.RecentAppointments = make([]dto.AppointmentResponse, 0, len(recent))
	for i := range recent {
		stats.RecentAppointments = append(stats.RecentAppointments, *toAppointmentResponse(&recent[i]))
	}

	return stats, nil
}
