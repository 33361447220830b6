package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eduboard/academy/internal/entity"
)

func TestInvoice_StatusAfterRejection(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		dueDate time.Time
		want    entity.InvoiceStatus
	}{
		{
			name:    "before due date",
			dueDate: now.Add(48 * time.Hour),
			want:    entity.InvoiceStatusUnpaid,
		},
		{
			name:    "after due date",
			dueDate: now.Add(-time.Minute),
			want:    entity.InvoiceStatusOverdue,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := entity.Invoice{DueDate: tt.dueDate}
			require.Equal(t, tt.want, inv.StatusAfterRejection(now))
		})
	}
}

func TestInvoice_NeedsProvisioning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		invoice entity.Invoice
		want    bool
	}{
		{
			name: "enrollment with trial request",
			invoice: entity.Invoice{
				Type:         entity.InvoiceTypeEnrollment,
				TrialRequest: &entity.TrialRequest{},
			},
			want: true,
		},
		{
			name:    "enrollment without trial request",
			invoice: entity.Invoice{Type: entity.InvoiceTypeEnrollment},
			want:    false,
		},
		{
			name: "monthly invoice",
			invoice: entity.Invoice{
				Type:         entity.InvoiceTypeMonthly,
				TrialRequest: &entity.TrialRequest{},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.invoice.NeedsProvisioning())
		})
	}
}

func TestInvoiceStatus_Validate(t *testing.T) {
	t.Parallel()

	for _, s := range []entity.InvoiceStatus{
		entity.InvoiceStatusUnpaid,
		entity.InvoiceStatusPaid,
		entity.InvoiceStatusOverdue,
		entity.InvoiceStatusPendingVerification,
		entity.InvoiceStatusCancelled,
	} {
		require.NoError(t, s.Validate())
	}

	require.ErrorIs(t, entity.InvoiceStatus("paid").Validate(), entity.ErrInvalidArgument)
}

func TestInvoiceType_Validate(t *testing.T) {
	t.Parallel()

	for _, typ := range []entity.InvoiceType{
		entity.InvoiceTypeEnrollment,
		entity.InvoiceTypeMonthly,
		entity.InvoiceTypeOther,
	} {
		require.NoError(t, typ.Validate())
	}

	require.ErrorIs(t, entity.InvoiceType("WEEKLY").Validate(), entity.ErrInvalidArgument)
}
