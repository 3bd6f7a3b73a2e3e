package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/usecase"
	"clinic-management-service/pkg/response"
	"clinic-management-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
	validator   *validator.CustomValidator
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, validator *validator.CustomValidator) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
		validator:   validator,
	}
}

// Rooms

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomNumberExists:
			response.Error(w, http.StatusConflict, "Room number already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create room")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	room, err := h.roomUsecase.Get(r.Context(), roomID)
	if err != nil {
		if err == usecase.ErrRoomNotFound {
			response.NotFound(w, "Room not found")
			return
		}
		response.InternalServerError(w, "Failed to get room")
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.RoomFilter{
		Search: q.Get("search"),
		Type:   q.Get("type"),
		Status: q.Get("status"),
	}

	page, limit := parsePagination(r)
	rooms, total, err := h.roomUsecase.List(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	response.List(w, "Rooms retrieved successfully", rooms, listMeta(page, limit, total))
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.Update(r.Context(), roomID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrRoomNumberExists:
			response.Error(w, http.StatusConflict, "Room number already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room updated successfully", room)
}

func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	err = h.roomUsecase.Delete(r.Context(), roomID)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.NotFound(w, "Room not found")
		case usecase.ErrRoomInUse:
			response.Error(w, http.StatusConflict, "Room has allotment records and cannot be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room deleted successfully", nil)
}

// Allotments

func (h *RoomHandler) CreateAllotment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomAllotmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	allotment, err := h.roomUsecase.Allot(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRoomNotFound:
			response.Error(w, http.StatusBadRequest, "Room not found", nil)
		case usecase.ErrPatientNotFound:
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
		case usecase.ErrRoomUnavailable:
			response.Error(w, http.StatusConflict, "Room is not available", nil)
		default:
			response.InternalServerError(w, "Failed to create room allotment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Room allotted successfully", allotment)
}

func (h *RoomHandler) GetAllotment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	allotmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid allotment ID", nil)
		return
	}

	allotment, err := h.roomUsecase.GetAllotment(r.Context(), allotmentID)
	if err != nil {
		if err == usecase.ErrAllotmentNotFound {
			response.NotFound(w, "Room allotment not found")
			return
		}
		response.InternalServerError(w, "Failed to get room allotment")
		return
	}

	response.Success(w, http.StatusOK, "Room allotment retrieved successfully", allotment)
}

func (h *RoomHandler) ListAllotments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.RoomAllotmentFilter{}
	if roomID, err := uuid.Parse(q.Get("room_id")); err == nil {
		filter.RoomID = roomID
	}
	if patientID, err := uuid.Parse(q.Get("patient_id")); err == nil {
		filter.PatientID = patientID
	}
	if active, err := strconv.ParseBool(q.Get("active")); err == nil {
		filter.Active = &active
	}

	page, limit := parsePagination(r)
	allotments, total, err := h.roomUsecase.ListAllotments(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get room allotments")
		return
	}

	response.List(w, "Room allotments retrieved successfully", allotments, listMeta(page, limit, total))
}

func (h *RoomHandler) UpdateAllotment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	allotmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid allotment ID", nil)
		return
	}

	var req dto.UpdateRoomAllotmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	allotment, err := h.roomUsecase.UpdateAllotment(r.Context(), allotmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAllotmentNotFound:
			response.NotFound(w, "Room allotment not found")
		case usecase.ErrAllotmentDischarged:
			response.Error(w, http.StatusConflict, "Patient has already been discharged", nil)
		default:
			response.InternalServerError(w, "Failed to update room allotment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room allotment updated successfully", allotment)
}

func (h *RoomHandler) DeleteAllotment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	allotmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid allotment ID", nil)
		return
	}

	err = h.roomUsecase.DeleteAllotment(r.Context(), allotmentID)
	if err != nil {
		if err == usecase.ErrAllotmentNotFound {
			response.NotFound(w, "Room allotment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete room allotment")
		return
	}

	response.Success(w, http.StatusOK, "Room allotment deleted successfully", nil)
}
