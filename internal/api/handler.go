package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/eduboard/academy/internal/entity"
	"github.com/eduboard/academy/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	VerifyPayment(ctx context.Context, cmd entity.VerifyPaymentCommand) (entity.VerificationResult, error)
	CreateInvoice(ctx context.Context, cmd service.CreateInvoiceCommand) (entity.Invoice, error)
	InvoiceByID(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
	UploadReceipt(ctx context.Context, cmd service.UploadReceiptCommand) (entity.PaymentReceipt, error)
	CreateTrialRequest(ctx context.Context, cmd service.CreateTrialRequestCommand) (entity.TrialRequest, error)
	TrialRequests(ctx context.Context) ([]entity.TrialRequest, error)
	Students(ctx context.Context) ([]entity.Student, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type VerifyPaymentRequest struct {
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type VerifyPaymentResponse struct {
	Receipt        ReceiptResponse `json:"receipt"`
	Invoice        InvoiceResponse `json:"invoice"`
	StudentCreated bool            `json:"studentCreated"`
	Message        string          `json:"message"`
}

// VerifyPayment records an approve/reject decision for a payment receipt.
// Approving an enrollment invoice also provisions the student account.
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoiceID, err := uuid.FromString(chi.URLParam(r, "invoiceID"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	receiptID, err := uuid.FromString(chi.URLParam(r, "receiptID"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid receipt id")
		return
	}

	var req VerifyPaymentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Authentication required")
		return
	}

	result, err := h.s.VerifyPayment(ctx, entity.VerifyPaymentCommand{
		InvoiceID:       invoiceID,
		ReceiptID:       receiptID,
		Approved:        req.Approved,
		RejectionReason: req.RejectionReason,
		Notes:           req.Notes,
		VerifiedBy:      user.ID,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to verify payment")
		return
	}

	SendJSON(ctx, w, http.StatusOK, VerifyPaymentResponse{
		Receipt:        toReceiptResponse(result.Receipt),
		Invoice:        toInvoiceResponse(result.Invoice),
		StudentCreated: result.StudentCreated,
		Message:        verificationMessage(result),
	})
}

func verificationMessage(result entity.VerificationResult) string {
	switch {
	case result.Receipt.Status == entity.ReceiptStatusRejected:
		return "Payment rejected"
	case result.StudentCreated:
		return "Payment approved and student account created"
	default:
		return "Payment approved"
	}
}

type CreateInvoiceRequest struct {
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency,omitempty"`
	DueDate        time.Time       `json:"dueDate"`
	StudentID      *uuid.UUID      `json:"studentId,omitempty"`
	TrialRequestID *uuid.UUID      `json:"trialRequestId,omitempty"`
	TeacherID      *uuid.UUID      `json:"teacherId,omitempty"`
	Description    string          `json:"description,omitempty"`
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateInvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.s.CreateInvoice(ctx, service.CreateInvoiceCommand{
		Type:           entity.InvoiceType(req.Type),
		Amount:         req.Amount,
		Currency:       req.Currency,
		DueDate:        req.DueDate,
		StudentID:      toNullUUID(req.StudentID),
		TrialRequestID: toNullUUID(req.TrialRequestID),
		TeacherID:      toNullUUID(req.TeacherID),
		Description:    req.Description,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toInvoiceResponse(inv))
}

func (h *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoiceID, err := uuid.FromString(chi.URLParam(r, "invoiceID"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	inv, err := h.s.InvoiceByID(ctx, invoiceID)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to get invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, toInvoiceResponse(inv))
}

type ListInvoicesResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	TotalCount int               `json:"totalCount"`
}

func (h *Handler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := invoiceFilterFromQuery(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid filter")
		return
	}

	invoices, count, err := h.s.Invoices(ctx, f)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list invoices")
		return
	}

	resp := ListInvoicesResponse{
		Invoices:   make([]InvoiceResponse, 0, len(invoices)),
		TotalCount: count,
	}

	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, toInvoiceResponse(inv))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type UploadReceiptRequest struct {
	FileURL string `json:"fileUrl"`
	Notes   string `json:"notes,omitempty"`
}

func (h *Handler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoiceID, err := uuid.FromString(chi.URLParam(r, "invoiceID"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req UploadReceiptRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	rcpt, err := h.s.UploadReceipt(ctx, service.UploadReceiptCommand{
		InvoiceID: invoiceID,
		FileURL:   req.FileURL,
		Notes:     req.Notes,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to upload receipt")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toReceiptResponse(rcpt))
}

type CreateTrialRequestRequest struct {
	StudentName  string `json:"studentName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Course       string `json:"course,omitempty"`
}

func (h *Handler) CreateTrialRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTrialRequestRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	tr, err := h.s.CreateTrialRequest(ctx, service.CreateTrialRequestCommand{
		StudentName:  req.StudentName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Course:       req.Course,
	})
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to create trial request")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toTrialRequestResponse(tr))
}

func (h *Handler) ListTrialRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	trs, err := h.s.TrialRequests(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list trial requests")
		return
	}

	resp := make([]TrialRequestResponse, 0, len(trs))
	for _, tr := range trs {
		resp = append(resp, toTrialRequestResponse(tr))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	students, err := h.s.Students(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err, "Failed to list students")
		return
	}

	resp := make([]StudentResponse, 0, len(students))
	for _, st := range students {
		resp = append(resp, toStudentResponse(st))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func invoiceFilterFromQuery(r *http.Request) (entity.InvoiceFilter, error) {
	f := entity.InvoiceFilter{
		Page:  1,
		Limit: defaultPageLimit,
	}

	q := r.URL.Query()

	if v := q.Get("status"); v != "" {
		status := entity.InvoiceStatus(v)

		err := status.Validate()
		if err != nil {
			return entity.InvoiceFilter{}, err
		}

		f.Status = &status
	}

	if v := q.Get("type"); v != "" {
		invType := entity.InvoiceType(v)

		err := invType.Validate()
		if err != nil {
			return entity.InvoiceFilter{}, err
		}

		f.Type = &invType
	}

	if v := q.Get("createdFrom"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return entity.InvoiceFilter{}, err
		}

		f.CreatedFrom = &from
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.ParseUint(v, 10, 64)
		if err != nil || page == 0 {
			return entity.InvoiceFilter{}, entity.ErrInvalidArgument
		}

		f.Page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil || limit == 0 || limit > maxPageLimit {
			return entity.InvoiceFilter{}, entity.ErrInvalidArgument
		}

		f.Limit = limit
	}

	return f, nil
}

func toNullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: *id, Valid: true}
}
