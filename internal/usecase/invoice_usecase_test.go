package usecase

import (
	"context"
	"testing"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceUsecase(invoiceRepo *mockInvoiceRepo) InvoiceUsecase {
	return NewInvoiceUsecase(testDB(), testLogger(), invoiceRepo, &mockPatientRepo{}, &mockActivityService{})
}

func pendingInvoice(id uuid.UUID) *entity.Invoice {
	return &entity.Invoice{
		ID:            id,
		InvoiceNumber: "INV-20250901-0A1B2C3D",
		PatientID:     uuid.New(),
		Amount:        decimal.NewFromInt(100),
		Tax:           decimal.NewFromInt(10),
		Discount:      decimal.NewFromInt(5),
		Total:         decimal.NewFromInt(105),
		Status:        entity.InvoiceStatusPending,
	}
}

func TestInvoiceUpdateKeepsUnsetFields(t *testing.T) {
	var updated *entity.Invoice
	invoiceRepo := &mockInvoiceRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Invoice, error) {
			return pendingInvoice(id), nil
		},
		UpdateFunc: func(invoice *entity.Invoice) error {
			updated = invoice
			return nil
		},
	}
	u := newInvoiceUsecase(invoiceRepo)

	amount := decimal.NewFromInt(200)
	// The detached handle cannot commit, so the merge is asserted on the
	// entity handed to the repository.
	u.Update(context.Background(), uuid.New(), &dto.UpdateInvoiceRequest{Amount: &amount})

	require.NotNil(t, updated)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(200)))
	assert.True(t, updated.Tax.Equal(decimal.NewFromInt(10)))
	assert.True(t, updated.Discount.Equal(decimal.NewFromInt(5)))
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(205)))
	assert.Equal(t, entity.InvoiceStatusPending, updated.Status)
	assert.Nil(t, updated.PaidAt)
}

func TestInvoiceUpdateToPaidSetsPaidAt(t *testing.T) {
	var updated *entity.Invoice
	invoiceRepo := &mockInvoiceRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Invoice, error) {
			return pendingInvoice(id), nil
		},
		UpdateFunc: func(invoice *entity.Invoice) error {
			updated = invoice
			return nil
		},
	}
	u := newInvoiceUsecase(invoiceRepo)

	u.Update(context.Background(), uuid.New(), &dto.UpdateInvoiceRequest{Status: strPtr(entity.InvoiceStatusPaid)})

	require.NotNil(t, updated)
	assert.Equal(t, entity.InvoiceStatusPaid, updated.Status)
	assert.NotNil(t, updated.PaidAt)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(100)))
}

func TestInvoiceGetNotFound(t *testing.T) {
	invoiceRepo := &mockInvoiceRepo{
		FindByIDFunc: func(id uuid.UUID) (*entity.Invoice, error) {
			return nil, nil
		},
	}
	u := newInvoiceUsecase(invoiceRepo)

	_, err := u.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}
