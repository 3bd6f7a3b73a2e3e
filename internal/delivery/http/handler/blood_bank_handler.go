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

type BloodBankHandler struct {
	bloodBankUsecase usecase.BloodBankUsecase
	validator        *validator.CustomValidator
}

func NewBloodBankHandler(bloodBankUsecase usecase.BloodBankUsecase, validator *validator.CustomValidator) *BloodBankHandler {
	return &BloodBankHandler{
		bloodBankUsecase: bloodBankUsecase,
		validator:        validator,
	}
}

// Donors

func (h *BloodBankHandler) CreateDonor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBloodDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donor, err := h.bloodBankUsecase.CreateDonor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create donor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Donor created successfully", donor)
}

func (h *BloodBankHandler) GetDonor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	donorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	donor, err := h.bloodBankUsecase.GetDonor(r.Context(), donorID)
	if err != nil {
		if err == usecase.ErrDonorNotFound {
			response.NotFound(w, "Donor not found")
			return
		}
		response.InternalServerError(w, "Failed to get donor")
		return
	}

	response.Success(w, http.StatusOK, "Donor retrieved successfully", donor)
}

func (h *BloodBankHandler) ListDonors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.BloodDonorFilter{
		Search:    q.Get("search"),
		BloodType: q.Get("blood_type"),
	}

	page, limit := parsePagination(r)
	donors, total, err := h.bloodBankUsecase.ListDonors(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get donors")
		return
	}

	response.List(w, "Donors retrieved successfully", donors, listMeta(page, limit, total))
}

func (h *BloodBankHandler) UpdateDonor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	donorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	var req dto.UpdateBloodDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donor, err := h.bloodBankUsecase.UpdateDonor(r.Context(), donorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update donor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donor updated successfully", donor)
}

func (h *BloodBankHandler) DeleteDonor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	donorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	err = h.bloodBankUsecase.DeleteDonor(r.Context(), donorID)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		case usecase.ErrDonorInUse:
			response.Error(w, http.StatusConflict, "Donor has related blood units and cannot be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete donor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donor deleted successfully", nil)
}

// Units

func (h *BloodBankHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBloodUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	unit, err := h.bloodBankUsecase.CreateUnit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDonorNotFound:
			response.Error(w, http.StatusBadRequest, "Donor not found", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create blood unit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blood unit created successfully", unit)
}

func (h *BloodBankHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	unitID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blood unit ID", nil)
		return
	}

	unit, err := h.bloodBankUsecase.GetUnit(r.Context(), unitID)
	if err != nil {
		if err == usecase.ErrBloodUnitNotFound {
			response.NotFound(w, "Blood unit not found")
			return
		}
		response.InternalServerError(w, "Failed to get blood unit")
		return
	}

	response.Success(w, http.StatusOK, "Blood unit retrieved successfully", unit)
}

func (h *BloodBankHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.BloodUnitFilter{
		BloodType: q.Get("blood_type"),
		Status:    q.Get("status"),
	}

	page, limit := parsePagination(r)
	units, total, err := h.bloodBankUsecase.ListUnits(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get blood units")
		return
	}

	response.List(w, "Blood units retrieved successfully", units, listMeta(page, limit, total))
}

func (h *BloodBankHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	unitID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blood unit ID", nil)
		return
	}

	var req dto.UpdateBloodUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	unit, err := h.bloodBankUsecase.UpdateUnit(r.Context(), unitID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBloodUnitNotFound:
			response.NotFound(w, "Blood unit not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update blood unit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood unit updated successfully", unit)
}

func (h *BloodBankHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	unitID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blood unit ID", nil)
		return
	}

	err = h.bloodBankUsecase.DeleteUnit(r.Context(), unitID)
	if err != nil {
		switch err {
		case usecase.ErrBloodUnitNotFound:
			response.NotFound(w, "Blood unit not found")
		case usecase.ErrBloodUnitInUse:
			response.Error(w, http.StatusConflict, "Blood unit has issue records and cannot be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete blood unit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood unit deleted successfully", nil)
}

func (h *BloodBankHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	stock, err := h.bloodBankUsecase.Stock(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get blood stock")
		return
	}

	response.Success(w, http.StatusOK, "Blood stock retrieved successfully", stock)
}

func (h *BloodBankHandler) GetStockByType(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bloodType := vars["bloodType"]

	stock, err := h.bloodBankUsecase.StockByType(r.Context(), bloodType)
	if err != nil {
		response.InternalServerError(w, "Failed to get blood stock")
		return
	}

	response.Success(w, http.StatusOK, "Blood stock retrieved successfully", stock)
}

// Issues

func (h *BloodBankHandler) IssueUnit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBloodIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	issue, err := h.bloodBankUsecase.IssueUnit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrBloodUnitNotFound:
			response.Error(w, http.StatusBadRequest, "Blood unit not found", nil)
		case usecase.ErrPatientNotFound:
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
		case usecase.ErrBloodUnitUnavailable:
			response.Error(w, http.StatusConflict, "Blood unit is not available for issue", nil)
		default:
			response.InternalServerError(w, "Failed to issue blood unit")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blood unit issued successfully", issue)
}

func (h *BloodBankHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	issues, total, err := h.bloodBankUsecase.ListIssues(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get blood issues")
		return
	}

	response.List(w, "Blood issues retrieved successfully", issues, listMeta(page, limit, total))
}
