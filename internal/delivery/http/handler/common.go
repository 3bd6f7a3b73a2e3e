package handler

import (
	"math"
	"net/http"
	"strconv"

	"clinic-management-service/pkg/response"
)

// parsePagination reads page and limit query params. Missing or invalid
// values fall back to zero so the usecase layer applies its defaults.
func parsePagination(r *http.Request) (int, int) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return page, limit
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// listMeta mirrors the normalization the usecase layer applies, so the
// meta block reflects the page that was actually served.
func listMeta(page, limit int, total int64) *response.Meta {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}
