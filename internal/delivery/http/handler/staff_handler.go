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

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

// Staff

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffEmailExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to create staff member")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Staff member created successfully", staff)
}

func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	staff, err := h.staffUsecase.Get(r.Context(), staffID)
	if err != nil {
		if err == usecase.ErrStaffNotFound {
			response.NotFound(w, "Staff member not found")
			return
		}
		response.InternalServerError(w, "Failed to get staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member retrieved successfully", staff)
}

func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.StaffFilter{
		Search:      q.Get("search"),
		Designation: q.Get("designation"),
		Department:  q.Get("department"),
		Status:      q.Get("status"),
	}

	page, limit := parsePagination(r)
	staff, total, err := h.staffUsecase.List(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get staff members")
		return
	}

	response.List(w, "Staff members retrieved successfully", staff, listMeta(page, limit, total))
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	var req dto.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.Update(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrStaffEmailExists:
			response.Error(w, http.StatusConflict, "Email already exists", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to update staff member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff member updated successfully", staff)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	err = h.staffUsecase.Delete(r.Context(), staffID)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrStaffInUse:
			response.Error(w, http.StatusConflict, "Staff member has attendance records and cannot be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete staff member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff member deleted successfully", nil)
}

// Attendance

func (h *StaffHandler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	attendance, err := h.staffUsecase.CreateAttendance(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.Error(w, http.StatusBadRequest, "Staff member not found", nil)
		case usecase.ErrAttendanceExists:
			response.Error(w, http.StatusConflict, "Attendance already recorded for this staff member and date", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp, expected RFC3339", nil)
		default:
			response.InternalServerError(w, "Failed to create attendance entry")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Attendance entry created successfully", attendance)
}

func (h *StaffHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attendanceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	attendance, err := h.staffUsecase.GetAttendance(r.Context(), attendanceID)
	if err != nil {
		if err == usecase.ErrAttendanceNotFound {
			response.NotFound(w, "Attendance entry not found")
			return
		}
		response.InternalServerError(w, "Failed to get attendance entry")
		return
	}

	response.Success(w, http.StatusOK, "Attendance entry retrieved successfully", attendance)
}

func (h *StaffHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.AttendanceFilter{
		Date:   q.Get("date"),
		Status: q.Get("status"),
	}
	if staffID, err := uuid.Parse(q.Get("staff_id")); err == nil {
		filter.StaffID = staffID
	}

	page, limit := parsePagination(r)
	entries, total, err := h.staffUsecase.ListAttendance(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get attendance entries")
		return
	}

	response.List(w, "Attendance entries retrieved successfully", entries, listMeta(page, limit, total))
}

func (h *StaffHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attendanceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	attendance, err := h.staffUsecase.UpdateAttendance(r.Context(), attendanceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAttendanceNotFound:
			response.NotFound(w, "Attendance entry not found")
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp, expected RFC3339", nil)
		default:
			response.InternalServerError(w, "Failed to update attendance entry")
		}
		return
	}

	response.Success(w, http.StatusOK, "Attendance entry updated successfully", attendance)
}

func (h *StaffHandler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attendanceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid attendance ID", nil)
		return
	}

	err = h.staffUsecase.DeleteAttendance(r.Context(), attendanceID)
	if err != nil {
		if err == usecase.ErrAttendanceNotFound {
			response.NotFound(w, "Attendance entry not found")
			return
		}
		response.InternalServerError(w, "Failed to delete attendance entry")
		return
	}

	response.Success(w, http.StatusOK, "Attendance entry deleted successfully", nil)
}
