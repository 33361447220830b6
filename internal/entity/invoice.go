package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvoiceType string

const (
	InvoiceTypeEnrollment InvoiceType = "ENROLLMENT"
	InvoiceTypeMonthly    InvoiceType = "MONTHLY"
	InvoiceTypeOther      InvoiceType = "OTHER"
)

func (t InvoiceType) String() string {
	return string(t)
}

func (t InvoiceType) Validate() error {
	switch t {
	case InvoiceTypeEnrollment, InvoiceTypeMonthly, InvoiceTypeOther:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice type %q", ErrInvalidArgument, string(t))
	}
}

type InvoiceStatus string

const (
	InvoiceStatusUnpaid              InvoiceStatus = "UNPAID"
	InvoiceStatusPaid                InvoiceStatus = "PAID"
	InvoiceStatusOverdue             InvoiceStatus = "OVERDUE"
	InvoiceStatusPendingVerification InvoiceStatus = "PENDING_VERIFICATION"
	InvoiceStatusCancelled           InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPaid, InvoiceStatusOverdue,
		InvoiceStatusPendingVerification, InvoiceStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown invoice status %q", ErrInvalidArgument, string(s))
	}
}

type Invoice struct {
	ID             uuid.UUID
	Type           InvoiceType
	Amount         decimal.Decimal
	Currency       string
	DueDate        time.Time
	Status         InvoiceStatus
	StudentID      uuid.NullUUID
	TrialRequestID uuid.NullUUID
	TeacherID      uuid.NullUUID
	Description    string
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Eager-loaded relations, present on point lookups only.
	TrialRequest *TrialRequest
	Teacher      *Teacher
}

// StatusAfterRejection returns the status an invoice falls back to when its
// payment proof is rejected. The due date is compared against wall-clock time
// at the moment the decision is applied, not against upload time.
func (i Invoice) StatusAfterRejection(now time.Time) InvoiceStatus {
	if now.After(i.DueDate) {
		return InvoiceStatusOverdue
	}

	return InvoiceStatusUnpaid
}

// NeedsProvisioning reports whether approving a payment for this invoice must
// also convert the linked trial request into a student account.
func (i Invoice) NeedsProvisioning() bool {
	return i.Type == InvoiceTypeEnrollment && i.TrialRequest != nil
}

type InvoiceFilter struct {
	Status      *InvoiceStatus
	Type        *InvoiceType
	CreatedFrom *time.Time
	Page        uint64
	Limit       uint64
}
