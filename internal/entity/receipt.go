package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type ReceiptStatus string

const (
	ReceiptStatusPending   ReceiptStatus = "PENDING"
	ReceiptStatusSubmitted ReceiptStatus = "SUBMITTED"
	ReceiptStatusApproved  ReceiptStatus = "APPROVED"
	ReceiptStatusRejected  ReceiptStatus = "REJECTED"
)

func (s ReceiptStatus) String() string {
	return string(s)
}

func (s ReceiptStatus) Validate() error {
	switch s {
	case ReceiptStatusPending, ReceiptStatusSubmitted, ReceiptStatusApproved, ReceiptStatusRejected:
		return nil
	default:
		return fmt.Errorf("%w: unknown receipt status %q", ErrInvalidArgument, string(s))
	}
}

// PaymentReceipt is a proof-of-payment artifact uploaded against one invoice.
// Once APPROVED its status is terminal.
type PaymentReceipt struct {
	ID              uuid.UUID
	InvoiceID       uuid.UUID
	FileURL         string
	UploadedBy      uuid.UUID
	Status          ReceiptStatus
	VerifiedBy      uuid.NullUUID
	VerifiedAt      *time.Time
	RejectionReason string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
