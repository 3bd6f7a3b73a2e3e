package usecase

import (
	"context"
	"testing"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newRoomUsecase(roomRepo *mockRoomRepo, allotmentRepo *mockRoomAllotmentRepo) RoomUsecase {
	return NewRoomUsecase(testDB(), testLogger(), roomRepo, allotmentRepo, &mockPatientRepo{}, &mockActivityService{})
}

func TestRoomDeleteBlockedByActiveAllotment(t *testing.T) {
	roomID := uuid.New()
	roomRepo := &mockRoomRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Room, error) {
			return &entity.Room{ID: id, Number: "101", Status: entity.RoomStatusOccupied}, nil
		},
	}
	allotmentRepo := &mockRoomAllotmentRepo{
		CountActiveByRoomIDFunc: func(id uuid.UUID) (int64, error) {
			assert.Equal(t, roomID, id)
			return 1, nil
		},
	}
	u := newRoomUsecase(roomRepo, allotmentRepo)

	err := u.Delete(context.Background(), roomID)
	assert.ErrorIs(t, err, ErrRoomInUse)
}

func TestRoomDeleteNotFound(t *testing.T) {
	roomRepo := &mockRoomRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Room, error) {
			return nil, nil
		},
	}
	u := newRoomUsecase(roomRepo, &mockRoomAllotmentRepo{})

	err := u.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestAllotRejectsUnavailableRoom(t *testing.T) {
	roomRepo := &mockRoomRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Room, error) {
			return &entity.Room{ID: id, Number: "101", Status: entity.RoomStatusMaintenance}, nil
		},
	}
	u := newRoomUsecase(roomRepo, &mockRoomAllotmentRepo{})

	_, err := u.Allot(context.Background(), &dto.CreateRoomAllotmentRequest{RoomID: uuid.New(), PatientID: uuid.New()})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}
