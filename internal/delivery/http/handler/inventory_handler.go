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

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

// Suppliers

func (h *InventoryHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	supplier, err := h.inventoryUsecase.CreateSupplier(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create supplier")
		return
	}

	response.Success(w, http.StatusCreated, "Supplier created successfully", supplier)
}

func (h *InventoryHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	supplierID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid supplier ID", nil)
		return
	}

	supplier, err := h.inventoryUsecase.GetSupplier(r.Context(), supplierID)
	if err != nil {
		if err == usecase.ErrSupplierNotFound {
			response.NotFound(w, "Supplier not found")
			return
		}
		response.InternalServerError(w, "Failed to get supplier")
		return
	}

	response.Success(w, http.StatusOK, "Supplier retrieved successfully", supplier)
}

func (h *InventoryHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	filter := &entity.SupplierFilter{
		Search: r.URL.Query().Get("search"),
	}

	page, limit := parsePagination(r)
	suppliers, total, err := h.inventoryUsecase.ListSuppliers(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get suppliers")
		return
	}

	response.List(w, "Suppliers retrieved successfully", suppliers, listMeta(page, limit, total))
}

func (h *InventoryHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	supplierID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid supplier ID", nil)
		return
	}

	var req dto.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	supplier, err := h.inventoryUsecase.UpdateSupplier(r.Context(), supplierID, &req)
	if err != nil {
		if err == usecase.ErrSupplierNotFound {
			response.NotFound(w, "Supplier not found")
			return
		}
		response.InternalServerError(w, "Failed to update supplier")
		return
	}

	response.Success(w, http.StatusOK, "Supplier updated successfully", supplier)
}

func (h *InventoryHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	supplierID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid supplier ID", nil)
		return
	}

	err = h.inventoryUsecase.DeleteSupplier(r.Context(), supplierID)
	if err != nil {
		switch err {
		case usecase.ErrSupplierNotFound:
			response.NotFound(w, "Supplier not found")
		case usecase.ErrSupplierInUse:
			response.Error(w, http.StatusConflict, "Supplier has inventory alerts and cannot be deleted", nil)
		default:
			response.InternalServerError(w, "Failed to delete supplier")
		}
		return
	}

	response.Success(w, http.StatusOK, "Supplier deleted successfully", nil)
}

// Inventory alerts

func (h *InventoryHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	alert, err := h.inventoryUsecase.CreateAlert(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSupplierNotFound:
			response.Error(w, http.StatusBadRequest, "Supplier not found", nil)
		default:
			response.InternalServerError(w, "Failed to create inventory alert")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Inventory alert created successfully", alert)
}

func (h *InventoryHandler) GetAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	alertID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid inventory alert ID", nil)
		return
	}

	alert, err := h.inventoryUsecase.GetAlert(r.Context(), alertID)
	if err != nil {
		if err == usecase.ErrInventoryAlertNotFound {
			response.NotFound(w, "Inventory alert not found")
			return
		}
		response.InternalServerError(w, "Failed to get inventory alert")
		return
	}

	response.Success(w, http.StatusOK, "Inventory alert retrieved successfully", alert)
}

func (h *InventoryHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.InventoryAlertFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}

	page, limit := parsePagination(r)
	alerts, total, err := h.inventoryUsecase.ListAlerts(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get inventory alerts")
		return
	}

	response.List(w, "Inventory alerts retrieved successfully", alerts, listMeta(page, limit, total))
}

func (h *InventoryHandler) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	alertID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid inventory alert ID", nil)
		return
	}

	var req dto.UpdateInventoryAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	alert, err := h.inventoryUsecase.UpdateAlert(r.Context(), alertID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInventoryAlertNotFound:
			response.NotFound(w, "Inventory alert not found")
		case usecase.ErrSupplierNotFound:
			response.Error(w, http.StatusBadRequest, "Supplier not found", nil)
		default:
			response.InternalServerError(w, "Failed to update inventory alert")
		}
		return
	}

	response.Success(w, http.StatusOK, "Inventory alert updated successfully", alert)
}

func (h *InventoryHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	alertID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid inventory alert ID", nil)
		return
	}

	err = h.inventoryUsecase.DeleteAlert(r.Context(), alertID)
	if err != nil {
		if err == usecase.ErrInventoryAlertNotFound {
			response.NotFound(w, "Inventory alert not found")
			return
		}
		response.InternalServerError(w, "Failed to delete inventory alert")
		return
	}

	response.Success(w, http.StatusOK, "Inventory alert deleted successfully", nil)
}
