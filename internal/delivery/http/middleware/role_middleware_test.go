package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	RequireAdmin(okHandler(&called)).ServeHTTP(rec, requestWithRole(entity.RoleIDAdmin))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsStaff(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	RequireAdmin(okHandler(&called)).ServeHTTP(rec, requestWithRole(entity.RoleIDStaff))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminOrStaff(t *testing.T) {
	for _, roleID := range []int{entity.RoleIDAdmin, entity.RoleIDStaff} {
		called := false
		rec := httptest.NewRecorder()
		RequireAdminOrStaff(okHandler(&called)).ServeHTTP(rec, requestWithRole(roleID))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	called := false
	rec := httptest.NewRecorder()
	RequireAdminOrStaff(okHandler(&called)).ServeHTTP(rec, requestWithRole(99))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleWithoutContext(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	RequireAdmin(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
