package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/usecase"
	"clinic-management-service/pkg/response"
	"clinic-management-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AmbulanceHandler struct {
	ambulanceUsecase usecase.AmbulanceUsecase
	validator        *validator.CustomValidator
}

func NewAmbulanceHandler(ambulanceUsecase usecase.AmbulanceUsecase, validator *validator.CustomValidator) *AmbulanceHandler {
	return &AmbulanceHandler{
		ambulanceUsecase: ambulanceUsecase,
		validator:        validator,
	}
}

// Ambulances

func (h *AmbulanceHandler) CreateAmbulance(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAmbulanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ambulance, err := h.ambulanceUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAmbulanceNumberExists:
			response.Error(w, http.StatusConflict, "Vehicle number already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create ambulance")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Ambulance created successfully", ambulance)
}

func (h *AmbulanceHandler) GetAmbulance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ambulanceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ambulance ID", nil)
		return
	}

	ambulance, err := h.ambulanceUsecase.Get(r.Context(), ambulanceID)
	if err != nil {
		if err == usecase.ErrAmbulanceNotFound {
			response.NotFound(w, "Ambulance not found")
			return
		}
		response.InternalServerError(w, "Failed to get ambulance")
		return
	}

	response.Success(w, http.StatusOK, "Ambulance retrieved successfully", ambulance)
}

func (h *AmbulanceHandler) ListAmbulances(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.AmbulanceFilter{
		Search: q.Get("search"),
		Status: q.Get("status"),
	}

	page, limit := parsePagination(r)
	ambulances, total, err := h.ambulanceUsecase.List(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get ambulances")
		return
	}

	response.List(w, "Ambulances retrieved successfully", ambulances, listMeta(page, limit, total))
}

func (h *AmbulanceHandler) UpdateAmbulance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ambulanceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ambulance ID", nil)
		return
	}

	var req dto.UpdateAmbulanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ambulance, err := h.ambulanceUsecase.Update(r.Context(), ambulanceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAmbulanceNotFound:
			response.NotFound(w, "Ambulance not found")
		case usecase.ErrAmbulanceNumberExists:
			response.Error(w, http.StatusConflict, "Vehicle number already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update ambulance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ambulance updated successfully", ambulance)
}

func (h *AmbulanceHandler) DeleteAmbulance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ambulanceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ambulance ID", nil)
		return
	}

	err = h.ambulanceUsecase.Delete(r.Context(), ambulanceID)
	if err != nil {
		switch err {
		case usecase.ErrAmbulanceNotFound:
			response.NotFound(w, "Ambulance not found")
		case usecase.ErrAmbulanceInUse:
			response.Error(w, http.StatusConflict, "Ambulance has emergency call records and cannot be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete ambulance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ambulance deleted successfully", nil)
}

// Emergency calls

func (h *AmbulanceHandler) CreateEmergencyCall(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmergencyCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	call, err := h.ambulanceUsecase.CreateCall(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create emergency call")
		return
	}

	response.Success(w, http.StatusCreated, "Emergency call created successfully", call)
}

func (h *AmbulanceHandler) GetEmergencyCall(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	callID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid emergency call ID", nil)
		return
	}

	call, err := h.ambulanceUsecase.GetCall(r.Context(), callID)
	if err != nil {
		if err == usecase.ErrEmergencyCallNotFound {
			response.NotFound(w, "Emergency call not found")
			return
		}
		response.InternalServerError(w, "Failed to get emergency call")
		return
	}

	response.Success(w, http.StatusOK, "Emergency call retrieved successfully", call)
}

func (h *AmbulanceHandler) ListEmergencyCalls(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.EmergencyCallFilter{
		Search: q.Get("search"),
		Status: q.Get("status"),
	}

	page, limit := parsePagination(r)
	calls, total, err := h.ambulanceUsecase.ListCalls(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get emergency calls")
		return
	}

	response.List(w, "Emergency calls retrieved successfully", calls, listMeta(page, limit, total))
}

func (h *AmbulanceHandler) UpdateEmergencyCall(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	callID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid emergency call ID", nil)
		return
	}

	var req dto.UpdateEmergencyCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	call, err := h.ambulanceUsecase.UpdateCall(r.Context(), callID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmergencyCallNotFound:
			response.NotFound(w, "Emergency call not found")
		case usecase.ErrAmbulanceNotFound:
			response.Error(w, http.StatusBadRequest, "Ambulance not found", nil)
		case usecase.ErrAmbulanceUnavailable:
			response.Error(w, http.StatusConflict, "Ambulance is not available for dispatch", nil)
		default:
			response.InternalServerError(w, "Failed to update emergency call")
		}
		return
	}

	response.Success(w, http.StatusOK, "Emergency call updated successfully", call)
}

func (h *AmbulanceHandler) DeleteEmergencyCall(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	callID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid emergency call ID", nil)
		return
	}

	err = h.ambulanceUsecase.DeleteCall(r.Context(), callID)
	if err != nil {
		if err == usecase.ErrEmergencyCallNotFound {
			response.NotFound(w, "Emergency call not found")
			return
		}
		response.InternalServerError(w, "Failed to delete emergency call")
		return
	}

	response.Success(w, http.StatusOK, "Emergency call deleted successfully", nil)
}
