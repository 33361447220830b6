package api

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/eduboard/academy/internal/entity"
)

type InvoiceResponse struct {
	ID             uuid.UUID  `json:"id"`
	Type           string     `json:"type"`
	Amount         string     `json:"amount"`
	Currency       string     `json:"currency"`
	DueDate        time.Time  `json:"dueDate"`
	Status         string     `json:"status"`
	StudentID      *uuid.UUID `json:"studentId,omitempty"`
	TrialRequestID *uuid.UUID `json:"trialRequestId,omitempty"`
	TeacherID      *uuid.UUID `json:"teacherId,omitempty"`
	Description    string     `json:"description,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func toInvoiceResponse(inv entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             inv.ID,
		Type:           inv.Type.String(),
		Amount:         inv.Amount.String(),
		Currency:       inv.Currency,
		DueDate:        inv.DueDate,
		Status:         inv.Status.String(),
		StudentID:      fromNullUUID(inv.StudentID),
		TrialRequestID: fromNullUUID(inv.TrialRequestID),
		TeacherID:      fromNullUUID(inv.TeacherID),
		Description:    inv.Description,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}

type ReceiptResponse struct {
	ID              uuid.UUID  `json:"id"`
	InvoiceID       uuid.UUID  `json:"invoiceId"`
	FileURL         string     `json:"fileUrl"`
	UploadedBy      uuid.UUID  `json:"uploadedBy"`
	Status          string     `json:"status"`
	VerifiedBy      *uuid.UUID `json:"verifiedBy,omitempty"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toReceiptResponse(rcpt entity.PaymentReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:              rcpt.ID,
		InvoiceID:       rcpt.InvoiceID,
		FileURL:         rcpt.FileURL,
		UploadedBy:      rcpt.UploadedBy,
		Status:          rcpt.Status.String(),
		VerifiedBy:      fromNullUUID(rcpt.VerifiedBy),
		VerifiedAt:      rcpt.VerifiedAt,
		RejectionReason: rcpt.RejectionReason,
		Notes:           rcpt.Notes,
		CreatedAt:       rcpt.CreatedAt,
		UpdatedAt:       rcpt.UpdatedAt,
	}
}

type TrialRequestResponse struct {
	ID           uuid.UUID `json:"id"`
	StudentName  string    `json:"studentName"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	Course       string    `json:"course,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toTrialRequestResponse(tr entity.TrialRequest) TrialRequestResponse {
	return TrialRequestResponse{
		ID:           tr.ID,
		StudentName:  tr.StudentName,
		ContactEmail: tr.ContactEmail,
		ContactPhone: tr.ContactPhone,
		Course:       tr.Course,
		Status:       tr.Status.String(),
		CreatedAt:    tr.CreatedAt,
		UpdatedAt:    tr.UpdatedAt,
	}
}

type StudentResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       *uuid.UUID `json:"userId,omitempty"`
	FullName     string     `json:"fullName"`
	ContactEmail string     `json:"contactEmail"`
	ContactPhone string     `json:"contactPhone,omitempty"`
	TeacherID    *uuid.UUID `json:"teacherId,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func toStudentResponse(st entity.Student) StudentResponse {
	return StudentResponse{
		ID:           st.ID,
		UserID:       fromNullUUID(st.UserID),
		FullName:     st.FullName,
		ContactEmail: st.ContactEmail,
		ContactPhone: st.ContactPhone,
		TeacherID:    fromNullUUID(st.TeacherID),
		Status:       st.Status.String(),
		CreatedAt:    st.CreatedAt,
		UpdatedAt:    st.UpdatedAt,
	}
}

func fromNullUUID(id uuid.NullUUID) *uuid.UUID {
	if !id.Valid {
		return nil
	}

	v := id.UUID

	return &v
}
