package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// VerifyPaymentCommand is a verification decision for one receipt of one
// invoice, submitted by an ADMIN actor.
type VerifyPaymentCommand struct {
	InvoiceID       uuid.UUID
	ReceiptID       uuid.UUID
	Approved        bool
	RejectionReason string
	Notes           string
	VerifiedBy      uuid.UUID
}

func (c VerifyPaymentCommand) Validate() error {
	if c.InvoiceID.IsNil() {
		return fmt.Errorf("%w: invoice id is required", ErrInvalidArgument)
	}

	if c.ReceiptID.IsNil() {
		return fmt.Errorf("%w: receipt id is required", ErrInvalidArgument)
	}

	if !c.Approved && c.RejectionReason == "" {
		return fmt.Errorf("%w: rejection reason is required when rejecting", ErrInvalidArgument)
	}

	return nil
}

// ReceiptDecision is the receipt-side write of a verification.
type ReceiptDecision struct {
	ReceiptID       uuid.UUID
	Status          ReceiptStatus
	VerifiedBy      uuid.UUID
	VerifiedAt      time.Time
	RejectionReason string
	Notes           string
}

// ProvisionCommand creates a User credential plus a linked Student profile,
// re-links the invoice to the new student and converts the trial request.
// Email is normalized; PasswordHash is the only form of the secret that may
// be persisted.
type ProvisionCommand struct {
	UserID         uuid.UUID
	StudentID      uuid.UUID
	Email          string
	PasswordHash   string
	FullName       string
	ContactPhone   string
	TeacherID      uuid.NullUUID
	TrialRequestID uuid.UUID
	InvoiceID      uuid.UUID
}

// VerificationChange is the unit of work applied by the store as one atomic
// transaction: the receipt decision, the invoice status transition and, for
// approved enrollment invoices, the provisioning branch.
type VerificationChange struct {
	InvoiceID     uuid.UUID
	Receipt       ReceiptDecision
	InvoiceStatus InvoiceStatus
	Provision     *ProvisionCommand
}

// ProvisionOutcome reports what the provisioning branch did. StudentCreated
// is false when an existing student matched the trial request's email.
type ProvisionOutcome struct {
	StudentCreated bool
	StudentID      uuid.NullUUID
}

// VerificationResult is returned to the caller after the transaction commits.
type VerificationResult struct {
	Receipt        PaymentReceipt
	Invoice        Invoice
	StudentCreated bool
	StudentID      uuid.NullUUID
}

// Scope narrows list queries by the acting user's role. A zero TeacherID and
// StudentID with RoleAdmin means unrestricted.
type Scope struct {
	Role      Role
	TeacherID uuid.NullUUID
	StudentID uuid.NullUUID
}
