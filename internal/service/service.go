package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/eduboard/academy/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Store interface {
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	CreateInvoice(ctx context.Context, inv entity.Invoice) error
	Invoices(ctx context.Context, f entity.InvoiceFilter, scope entity.Scope) ([]entity.Invoice, int, error)
	Receipt(ctx context.Context, id uuid.UUID) (entity.PaymentReceipt, error)
	CreateReceipt(ctx context.Context, rcpt entity.PaymentReceipt) error
	ApplyVerification(ctx context.Context, change entity.VerificationChange) (entity.ProvisionOutcome, error)
	CreateTrialRequest(ctx context.Context, tr entity.TrialRequest) error
	TrialRequests(ctx context.Context) ([]entity.TrialRequest, error)
	Students(ctx context.Context, scope entity.Scope) ([]entity.Student, error)
	TeacherByUserID(ctx context.Context, userID uuid.UUID) (entity.Teacher, error)
	StudentByUserID(ctx context.Context, userID uuid.UUID) (entity.Student, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type Notifier interface {
	SendStudentCredentials(ctx context.Context, email, name, password, loginURL string) error
}

type Producer interface {
	PaymentVerified(ctx context.Context, invoiceID, receiptID uuid.UUID, approved bool)
	StudentEnrolled(ctx context.Context, studentID, invoiceID uuid.UUID)
}

type Service struct {
	store    Store
	notifier Notifier
	producer Producer
	loginURL string
}

func New(store Store, notifier Notifier, producer Producer, loginURL string) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		producer: producer,
		loginURL: loginURL,
	}
}

// VerifyPayment records an approve/reject decision for one receipt of one
// invoice. Approving an enrollment invoice linked to a trial request also
// provisions a student account in the same transaction, unless a student
// already exists for the trial request's contact email. Notification of
// generated credentials happens strictly after commit and its failure never
// fails the request.
func (s *Service) VerifyPayment(ctx context.Context, cmd entity.VerifyPaymentCommand) (entity.VerificationResult, error) {
	err := cmd.Validate()
	if err != nil {
		return entity.VerificationResult{}, err
	}

	invoice, err := s.store.Invoice(ctx, cmd.InvoiceID)
	if err != nil {
		return entity.VerificationResult{}, fmt.Errorf("get invoice %s: %w", cmd.InvoiceID, err)
	}

	receipt, err := s.store.Receipt(ctx, cmd.ReceiptID)
	if err != nil {
		return entity.VerificationResult{}, fmt.Errorf("get receipt %s: %w", cmd.ReceiptID, err)
	}

	if receipt.InvoiceID != invoice.ID {
		return entity.VerificationResult{}, fmt.Errorf("receipt %s, invoice %s: %w",
			receipt.ID, invoice.ID, entity.ErrInvalidRelation)
	}

	if receipt.Status == entity.ReceiptStatusApproved {
		return entity.VerificationResult{}, fmt.Errorf("receipt %s: %w", receipt.ID, entity.ErrAlreadyApproved)
	}

	now := time.Now()

	decision := entity.ReceiptDecision{
		ReceiptID:  receipt.ID,
		Status:     entity.ReceiptStatusApproved,
		VerifiedBy: cmd.VerifiedBy,
		VerifiedAt: now,
		Notes:      cmd.Notes,
	}

	invoiceStatus := entity.InvoiceStatusPaid

	if !cmd.Approved {
		decision.Status = entity.ReceiptStatusRejected
		decision.RejectionReason = cmd.RejectionReason
		invoiceStatus = invoice.StatusAfterRejection(now)
	}

	change := entity.VerificationChange{
		InvoiceID:     invoice.ID,
		Receipt:       decision,
		InvoiceStatus: invoiceStatus,
	}

	// The plaintext secret lives only here, for the post-commit notification.
	var secret string

	if cmd.Approved && invoice.NeedsProvisioning() {
		provision, plain, err := buildProvision(invoice)
		if err != nil {
			return entity.VerificationResult{}, fmt.Errorf("build provision: %w", err)
		}

		change.Provision = &provision
		secret = plain
	}

	outcome, err := s.store.ApplyVerification(ctx, change)
	if err != nil {
		return entity.VerificationResult{}, fmt.Errorf("apply verification: %w", err)
	}

	receipt.Status = decision.Status
	receipt.VerifiedBy = uuid.NullUUID{UUID: cmd.VerifiedBy, Valid: true}
	receipt.VerifiedAt = &decision.VerifiedAt
	receipt.RejectionReason = decision.RejectionReason
	receipt.Notes = decision.Notes
	receipt.UpdatedAt = now

	invoice.Status = invoiceStatus
	invoice.UpdatedAt = now

	if outcome.StudentCreated {
		invoice.StudentID = outcome.StudentID
	}

	s.notifyProvisioned(ctx, change.Provision, outcome, secret)

	s.producer.PaymentVerified(ctx, invoice.ID, receipt.ID, cmd.Approved)

	if outcome.StudentCreated {
		s.producer.StudentEnrolled(ctx, outcome.StudentID.UUID, invoice.ID)
	}

	slog.InfoContext(ctx, "payment verification recorded",
		"invoice_id", invoice.ID,
		"receipt_id", receipt.ID,
		"approved", cmd.Approved,
		"student_created", outcome.StudentCreated,
	)

	return entity.VerificationResult{
		Receipt:        receipt,
		Invoice:        invoice,
		StudentCreated: outcome.StudentCreated,
		StudentID:      outcome.StudentID,
	}, nil
}

// notifyProvisioned sends the generated credentials to the new student.
// Best effort: the decision is already committed, so a delivery failure is
// logged and swallowed. An admin can resend credentials manually.
func (s *Service) notifyProvisioned(
	ctx context.Context,
	provision *entity.ProvisionCommand,
	outcome entity.ProvisionOutcome,
	secret string,
) {
	if provision == nil || !outcome.StudentCreated {
		return
	}

	err := s.notifier.SendStudentCredentials(ctx, provision.Email, provision.FullName, secret, s.loginURL)
	if err != nil {
		slog.ErrorContext(ctx, "send credentials email",
			"error", err,
			"student_id", outcome.StudentID.UUID,
		)
	}
}

type CreateInvoiceCommand struct {
	Type           entity.InvoiceType
	Amount         decimal.Decimal
	Currency       string
	DueDate        time.Time
	StudentID      uuid.NullUUID
	TrialRequestID uuid.NullUUID
	TeacherID      uuid.NullUUID
	Description    string
}

func (s *Service) CreateInvoice(ctx context.Context, cmd CreateInvoiceCommand) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = cmd.Type.Validate()
	if err != nil {
		return entity.Invoice{}, err
	}

	if !cmd.Amount.IsPositive() {
		return entity.Invoice{}, fmt.Errorf("%w: amount must be positive", entity.ErrInvalidArgument)
	}

	if cmd.DueDate.IsZero() {
		return entity.Invoice{}, fmt.Errorf("%w: due date is required", entity.ErrInvalidArgument)
	}

	switch cmd.Type {
	case entity.InvoiceTypeEnrollment:
		if !cmd.TrialRequestID.Valid {
			return entity.Invoice{}, fmt.Errorf("%w: enrollment invoice requires a trial request", entity.ErrInvalidArgument)
		}
	case entity.InvoiceTypeMonthly:
		if !cmd.StudentID.Valid {
			return entity.Invoice{}, fmt.Errorf("%w: monthly invoice requires a student", entity.ErrInvalidArgument)
		}
	case entity.InvoiceTypeOther:
	}

	currency := cmd.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()

	inv := entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Type:           cmd.Type,
		Amount:         cmd.Amount,
		Currency:       currency,
		DueDate:        cmd.DueDate,
		Status:         entity.InvoiceStatusUnpaid,
		StudentID:      cmd.StudentID,
		TrialRequestID: cmd.TrialRequestID,
		TeacherID:      cmd.TeacherID,
		Description:    cmd.Description,
		CreatedBy:      user.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.store.CreateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	return inv, nil
}

func (s *Service) InvoiceByID(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	scope, err := s.scopeFor(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err := s.store.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	if !invoiceInScope(inv, scope) {
		return entity.Invoice{}, fmt.Errorf("invoice %s: %w", id, entity.ErrNotFound)
	}

	return inv, nil
}

func invoiceInScope(inv entity.Invoice, scope entity.Scope) bool {
	switch scope.Role {
	case entity.RoleTeacher:
		return inv.TeacherID.Valid && inv.TeacherID.UUID == scope.TeacherID.UUID
	case entity.RoleStudent:
		return inv.StudentID.Valid && inv.StudentID.UUID == scope.StudentID.UUID
	default:
		return true
	}
}

func (s *Service) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	scope, err := s.scopeFor(ctx)
	if err != nil {
		return nil, 0, err
	}

	invoices, count, err := s.store.Invoices(ctx, f, scope)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, count, nil
}

type UploadReceiptCommand struct {
	InvoiceID uuid.UUID
	FileURL   string
	Notes     string
}

// UploadReceipt records a proof-of-payment artifact against an invoice and
// moves the invoice to PENDING_VERIFICATION.
func (s *Service) UploadReceipt(ctx context.Context, cmd UploadReceiptCommand) (entity.PaymentReceipt, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.PaymentReceipt{}, err
	}

	if cmd.FileURL == "" {
		return entity.PaymentReceipt{}, fmt.Errorf("%w: file reference is required", entity.ErrInvalidArgument)
	}

	_, err = s.store.Invoice(ctx, cmd.InvoiceID)
	if err != nil {
		return entity.PaymentReceipt{}, fmt.Errorf("get invoice %s: %w", cmd.InvoiceID, err)
	}

	now := time.Now()

	rcpt := entity.PaymentReceipt{
		ID:         uuid.Must(uuid.NewV4()),
		InvoiceID:  cmd.InvoiceID,
		FileURL:    cmd.FileURL,
		UploadedBy: user.ID,
		Status:     entity.ReceiptStatusSubmitted,
		Notes:      cmd.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.store.CreateReceipt(ctx, rcpt)
	if err != nil {
		return entity.PaymentReceipt{}, fmt.Errorf("create receipt: %w", err)
	}

	return rcpt, nil
}

type CreateTrialRequestCommand struct {
	StudentName  string
	ContactEmail string
	ContactPhone string
	Course       string
}

func (s *Service) CreateTrialRequest(ctx context.Context, cmd CreateTrialRequestCommand) (entity.TrialRequest, error) {
	if cmd.StudentName == "" {
		return entity.TrialRequest{}, fmt.Errorf("%w: student name is required", entity.ErrInvalidArgument)
	}

	if cmd.ContactEmail == "" {
		return entity.TrialRequest{}, fmt.Errorf("%w: contact email is required", entity.ErrInvalidArgument)
	}

	now := time.Now()

	tr := entity.TrialRequest{
		ID:           uuid.Must(uuid.NewV4()),
		StudentName:  cmd.StudentName,
		ContactEmail: entity.NormalizeEmail(cmd.ContactEmail),
		ContactPhone: cmd.ContactPhone,
		Course:       cmd.Course,
		Status:       entity.TrialStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.store.CreateTrialRequest(ctx, tr)
	if err != nil {
		return entity.TrialRequest{}, fmt.Errorf("create trial request: %w", err)
	}

	return tr, nil
}

func (s *Service) TrialRequests(ctx context.Context) ([]entity.TrialRequest, error) {
	return s.store.TrialRequests(ctx)
}

func (s *Service) Students(ctx context.Context) ([]entity.Student, error) {
	scope, err := s.scopeFor(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.store.Students(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	return students, nil
}

// MarkOverdueInvoices is run periodically to flip unpaid invoices past their
// due date to OVERDUE.
func (s *Service) MarkOverdueInvoices(ctx context.Context) error {
	count, err := s.store.MarkOverdue(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("mark overdue invoices: %w", err)
	}

	if count > 0 {
		slog.InfoContext(ctx, "invoices marked overdue", "count", count)
	}

	return nil
}

// scopeFor resolves the acting user's role into a query scope. A TEACHER or
// STUDENT user without the matching profile row is a data-integrity error
// reported as NotFound.
func (s *Service) scopeFor(ctx context.Context) (entity.Scope, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Scope{}, err
	}

	switch user.Role {
	case entity.RoleAdmin:
		return entity.Scope{Role: entity.RoleAdmin}, nil

	case entity.RoleTeacher:
		t, err := s.store.TeacherByUserID(ctx, user.ID)
		if err != nil {
			return entity.Scope{}, fmt.Errorf("teacher profile for user %s: %w", user.ID, err)
		}

		return entity.Scope{
			Role:      entity.RoleTeacher,
			TeacherID: uuid.NullUUID{UUID: t.ID, Valid: true},
		}, nil

	case entity.RoleStudent:
		st, err := s.store.StudentByUserID(ctx, user.ID)
		if err != nil {
			return entity.Scope{}, fmt.Errorf("student profile for user %s: %w", user.ID, err)
		}

		return entity.Scope{
			Role:      entity.RoleStudent,
			StudentID: uuid.NullUUID{UUID: st.ID, Valid: true},
		}, nil

	default:
		return entity.Scope{}, fmt.Errorf("role %q: %w", user.Role, entity.ErrForbidden)
	}
}
