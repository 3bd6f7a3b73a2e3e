package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/patients?page=3&limit=20", nil)
	page, limit := parsePagination(req)
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)

	req = httptest.NewRequest(http.MethodGet, "/patients?page=abc&limit=", nil)
	page, limit = parsePagination(req)
	assert.Equal(t, 0, page)
	assert.Equal(t, 0, limit)
}

func TestListMeta(t *testing.T) {
	meta := listMeta(0, 0, 25)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	meta = listMeta(2, 500, 101)
	assert.Equal(t, 100, meta.Limit)
	assert.Equal(t, 2, meta.TotalPages)

	meta = listMeta(1, 10, 0)
	assert.Equal(t, 0, meta.TotalPages)
}
