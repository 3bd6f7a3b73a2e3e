package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBloodBankUsecase(unitRepo *mockBloodUnitRepo) BloodBankUsecase {
	return NewBloodBankUsecase(testDB(), testLogger(), &mockBloodDonorRepo{}, unitRepo, &mockBloodIssueRepo{}, &mockPatientRepo{}, &mockActivityService{})
}

func TestStockByTypeReturnsMatchingUnits(t *testing.T) {
	now := time.Now()
	unitRepo := &mockBloodUnitRepo{
		FindByTypeFunc: func(bloodType string) ([]entity.BloodUnit, error) {
			assert.Equal(t, "A+", bloodType)
			return []entity.BloodUnit{
				{ID: uuid.New(), BloodType: "A+", Status: entity.BloodUnitStatusAvailable, CollectedAt: now, ExpiresAt: now},
				{ID: uuid.New(), BloodType: "A+", Status: entity.BloodUnitStatusAvailable, CollectedAt: now, ExpiresAt: now},
				{ID: uuid.New(), BloodType: "A+", Status: entity.BloodUnitStatusReserved, CollectedAt: now, ExpiresAt: now},
			}, nil
		},
	}
	u := newBloodBankUsecase(unitRepo)

	stock, err := u.StockByType(context.Background(), "A+")
	require.NoError(t, err)
	assert.Equal(t, "A+", stock.BloodType)
	assert.Len(t, stock.Items, 3)
	assert.Equal(t, int64(3), stock.TotalUnits)
}

func TestStockGroupsAvailableUnits(t *testing.T) {
	unitRepo := &mockBloodUnitRepo{
		StockCountsFunc: func() ([]entity.BloodStockCount, error) {
			return []entity.BloodStockCount{
				{BloodType: "A+", Total: 3},
				{BloodType: "O-", Total: 2},
			}, nil
		},
	}
	u := newBloodBankUsecase(unitRepo)

	stock, err := u.Stock(context.Background())
	require.NoError(t, err)
	assert.Len(t, stock.Items, 2)
	assert.Equal(t, int64(5), stock.TotalUnits)
}

func TestIssueUnitRejectsUnavailableUnit(t *testing.T) {
	unitRepo := &mockBloodUnitRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.BloodUnit, error) {
			return &entity.BloodUnit{ID: id, BloodType: "B+", Status: entity.BloodUnitStatusIssued}, nil
		},
	}
	u := newBloodBankUsecase(unitRepo)

	req := &dto.CreateBloodIssueRequest{UnitID: uuid.New(), PatientID: uuid.New()}
	_, err := u.IssueUnit(context.Background(), req)
	assert.ErrorIs(t, err, ErrBloodUnitUnavailable)
}
