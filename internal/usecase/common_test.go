package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"clinic-management-service/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", 0, 0, 1, 10},
		{"negative values", -5, -1, 1, 10},
		{"within bounds", 3, 25, 3, 25},
		{"limit capped", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := normalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = parseDate("15/03/2026")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestParseDatePtrEmpty(t *testing.T) {
	d, err := parseDatePtr("")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestFormatDatePtr(t *testing.T) {
	assert.Equal(t, "", formatDatePtr(nil))

	d := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-15", formatDatePtr(&d))
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	wrapped := fmt.Errorf("create user: %w", dup)

	assert.True(t, isDuplicateKeyError(dup, "email"))
	assert.True(t, isDuplicateKeyError(wrapped, "email"))
	assert.False(t, isDuplicateKeyError(dup, "phone"))
	assert.False(t, isDuplicateKeyError(errors.New("some error"), "email"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"}

	assert.True(t, isForeignKeyViolation(fk))
	assert.True(t, isForeignKeyError(fk, "patient_id"))
	assert.False(t, isForeignKeyError(fk, "doctor_id"))
	assert.False(t, isForeignKeyViolation(errors.New("some error")))
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, entity.InventoryStatusOutOfStock, stockStatus(0, 10))
	assert.Equal(t, entity.InventoryStatusOutOfStock, stockStatus(-3, 10))
	assert.Equal(t, entity.InventoryStatusLowStock, stockStatus(5, 10))
	assert.Equal(t, entity.InventoryStatusLowStock, stockStatus(10, 10))
	assert.Equal(t, entity.InventoryStatusOK, stockStatus(11, 10))
}

func TestNewInvoiceNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-\d{8}-[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		number := newInvoiceNumber()
		assert.Regexp(t, pattern, number)
		assert.False(t, seen[number], "invoice numbers should not repeat")
		seen[number] = true
	}
}
