package handler

import (
	"net/http"

	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/usecase"
	"clinic-management-service/pkg/response"

	"github.com/google/uuid"
)

type ActivityLogHandler struct {
	activityLogUsecase usecase.ActivityLogUsecase
}

func NewActivityLogHandler(activityLogUsecase usecase.ActivityLogUsecase) *ActivityLogHandler {
	return &ActivityLogHandler{
		activityLogUsecase: activityLogUsecase,
	}
}

func (h *ActivityLogHandler) ListActivityLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := &entity.ActivityLogFilter{
		Action: q.Get("action"),
	}
	if userID, err := uuid.Parse(q.Get("user_id")); err == nil {
		filter.UserID = userID
	}

	page, limit := parsePagination(r)
	entries, total, err := h.activityLogUsecase.List(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get activity logs")
		return
	}

	response.List(w, "Activity logs retrieved successfully", entries, listMeta(page, limit, total))
}
