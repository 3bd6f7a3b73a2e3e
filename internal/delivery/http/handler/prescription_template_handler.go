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

type PrescriptionTemplateHandler struct {
	templateUsecase usecase.PrescriptionTemplateUsecase
	validator       *validator.CustomValidator
}

func NewPrescriptionTemplateHandler(templateUsecase usecase.PrescriptionTemplateUsecase, validator *validator.CustomValidator) *PrescriptionTemplateHandler {
	return &PrescriptionTemplateHandler{
		templateUsecase: templateUsecase,
		validator:       validator,
	}
}

func (h *PrescriptionTemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrescriptionTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.templateUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.Error(w, http.StatusBadRequest, "Doctor not found", nil)
		default:
			response.InternalServerError(w, "Failed to create prescription template")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription template created successfully", template)
}

func (h *PrescriptionTemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	template, err := h.templateUsecase.Get(r.Context(), templateID)
	if err != nil {
		if err == usecase.ErrTemplateNotFound {
			response.NotFound(w, "Prescription template not found")
			return
		}
		response.InternalServerError(w, "Failed to get prescription template")
		return
	}

	response.Success(w, http.StatusOK, "Prescription template retrieved successfully", template)
}

func (h *PrescriptionTemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.PrescriptionTemplateFilter{
		Search: q.Get("search"),
	}
	if doctorID, err := uuid.Parse(q.Get("doctor_id")); err == nil {
		filter.DoctorID = doctorID
	}

	page, limit := parsePagination(r)
	templates, total, err := h.templateUsecase.List(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get prescription templates")
		return
	}

	response.List(w, "Prescription templates retrieved successfully", templates, listMeta(page, limit, total))
}

func (h *PrescriptionTemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	var req dto.UpdatePrescriptionTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.templateUsecase.Update(r.Context(), templateID, &req)
	if err != nil {
		if err == usecase.ErrTemplateNotFound {
			response.NotFound(w, "Prescription template not found")
			return
		}
		response.InternalServerError(w, "Failed to update prescription template")
		return
	}

	response.Success(w, http.StatusOK, "Prescription template updated successfully", template)
}

func (h *PrescriptionTemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	templateID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid template ID", nil)
		return
	}

	err = h.templateUsecase.Delete(r.Context(), templateID)
	if err != nil {
		if err == usecase.ErrTemplateNotFound {
			response.NotFound(w, "Prescription template not found")
			return
		}
		response.InternalServerError(w, "Failed to delete prescription template")
		return
	}

	response.Success(w, http.StatusOK, "Prescription template deleted successfully", nil)
}
