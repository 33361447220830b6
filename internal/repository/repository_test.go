package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/eduboard/academy/internal/entity"
)

func TestRepository_ApplyVerification_ApproveProvisionsStudent(t *testing.T) {
	repo, pool := testRepo(t)
	ctx := context.Background()

	tr := createTrialRequest(t, repo, "parent@example.com")
	inv := createEnrollmentInvoice(t, repo, tr.ID, time.Now().Add(7*24*time.Hour))
	rcpt := createReceipt(t, repo, inv.ID)

	provision := provisionFor(inv, tr.ID, tr.ContactEmail)

	outcome, err := repo.ApplyVerification(ctx, approvalChange(inv, rcpt, provision))
	require.NoError(t, err)
	require.True(t, outcome.StudentCreated)
	require.Equal(t, provision.StudentID, outcome.StudentID.UUID)

	got, err := repo.Receipt(ctx, rcpt.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ReceiptStatusApproved, got.Status)
	require.NotNil(t, got.VerifiedAt)

	invAfter, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, invAfter.Status)
	require.Equal(t, provision.StudentID, invAfter.StudentID.UUID)

	trAfter, err := repo.TrialRequest(ctx, tr.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TrialStatusConverted, trAfter.Status)

	var mustReset bool

	err = pool.QueryRow(ctx,
		`SELECT must_reset_password FROM users WHERE id = $1`, provision.UserID).Scan(&mustReset)
	require.NoError(t, err)
	require.True(t, mustReset)
}

func TestRepository_ApplyVerification_ExistingStudentReused(t *testing.T) {
	repo, pool := testRepo(t)
	ctx := context.Background()

	const email = "parent@example.com"

	// First enrollment creates the student.
	tr1 := createTrialRequest(t, repo, email)
	inv1 := createEnrollmentInvoice(t, repo, tr1.ID, time.Now().Add(24*time.Hour))
	rcpt1 := createReceipt(t, repo, inv1.ID)

	first := provisionFor(inv1, tr1.ID, email)

	outcome, err := repo.ApplyVerification(ctx, approvalChange(inv1, rcpt1, first))
	require.NoError(t, err)
	require.True(t, outcome.StudentCreated)

	// Second enrollment for the same email, differently cased.
	tr2 := createTrialRequest(t, repo, "Parent@Example.COM")
	inv2 := createEnrollmentInvoice(t, repo, tr2.ID, time.Now().Add(24*time.Hour))
	rcpt2 := createReceipt(t, repo, inv2.ID)

	outcome, err = repo.ApplyVerification(ctx, approvalChange(inv2, rcpt2, provisionFor(inv2, tr2.ID, email)))
	require.NoError(t, err)
	require.False(t, outcome.StudentCreated)
	require.Equal(t, first.StudentID, outcome.StudentID.UUID)

	// The second invoice is paid but not re-linked to the existing student.
	inv2After, err := repo.Invoice(ctx, inv2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, inv2After.Status)
	require.False(t, inv2After.StudentID.Valid)

	tr2After, err := repo.TrialRequest(ctx, tr2.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TrialStatusConverted, tr2After.Status)

	// Still exactly one student and one user for the email.
	var students int

	err = pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE lower(contact_email) = $1`, email).Scan(&students)
	require.NoError(t, err)
	require.Equal(t, 1, students)
}

func TestRepository_ApplyVerification_SecondApprovalConflicts(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	tr := createTrialRequest(t, repo, "parent@example.com")
	inv := createEnrollmentInvoice(t, repo, tr.ID, time.Now().Add(24*time.Hour))
	rcpt := createReceipt(t, repo, inv.ID)

	_, err := repo.ApplyVerification(ctx, approvalChange(inv, rcpt, provisionFor(inv, tr.ID, tr.ContactEmail)))
	require.NoError(t, err)

	_, err = repo.ApplyVerification(ctx, approvalChange(inv, rcpt, nil))
	require.ErrorIs(t, err, entity.ErrAlreadyApproved)
}

func TestRepository_ApplyVerification_ReceiptFromAnotherInvoice(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	tr1 := createTrialRequest(t, repo, "one@example.com")
	inv1 := createEnrollmentInvoice(t, repo, tr1.ID, time.Now().Add(24*time.Hour))
	rcpt1 := createReceipt(t, repo, inv1.ID)

	tr2 := createTrialRequest(t, repo, "two@example.com")
	inv2 := createEnrollmentInvoice(t, repo, tr2.ID, time.Now().Add(24*time.Hour))

	_, err := repo.ApplyVerification(ctx, approvalChange(inv2, rcpt1, nil))
	require.ErrorIs(t, err, entity.ErrInvalidRelation)
}

func TestRepository_ApplyVerification_RollsBackOnProvisionFailure(t *testing.T) {
	repo, pool := testRepo(t)
	ctx := context.Background()

	tr := createTrialRequest(t, repo, "parent@example.com")
	inv := createEnrollmentInvoice(t, repo, tr.ID, time.Now().Add(24*time.Hour))
	rcpt := createReceipt(t, repo, inv.ID)

	// Provision referencing a missing trial request fails inside the
	// transaction; nothing may stick.
	broken := provisionFor(inv, uuid.Must(uuid.NewV4()), tr.ContactEmail)

	_, err := repo.ApplyVerification(ctx, approvalChange(inv, rcpt, broken))
	require.ErrorIs(t, err, entity.ErrNotFound)

	got, err := repo.Receipt(ctx, rcpt.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ReceiptStatusSubmitted, got.Status)

	invAfter, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPendingVerification, invAfter.Status)

	var users int

	err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&users)
	require.NoError(t, err)
	require.Zero(t, users)
}

func TestRepository_ApplyVerification_Rejection(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	tr := createTrialRequest(t, repo, "parent@example.com")
	inv := createEnrollmentInvoice(t, repo, tr.ID, time.Now().Add(-24*time.Hour))
	rcpt := createReceipt(t, repo, inv.ID)

	change := approvalChange(inv, rcpt, nil)
	change.Receipt.Status = entity.ReceiptStatusRejected
	change.Receipt.RejectionReason = "amount does not match"
	change.InvoiceStatus = entity.InvoiceStatusOverdue

	_, err := repo.ApplyVerification(ctx, change)
	require.NoError(t, err)

	got, err := repo.Receipt(ctx, rcpt.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ReceiptStatusRejected, got.Status)
	require.Equal(t, "amount does not match", got.RejectionReason)

	invAfter, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusOverdue, invAfter.Status)

	trAfter, err := repo.TrialRequest(ctx, tr.ID)
	require.NoError(t, err)
	require.Equal(t, entity.TrialStatusPending, trAfter.Status)
}

func TestRepository_CreateReceipt_MovesInvoiceToPendingVerification(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	tr := createTrialRequest(t, repo, "parent@example.com")
	inv := createEnrollmentInvoice(t, repo, tr.ID, time.Now().Add(24*time.Hour))

	createReceipt(t, repo, inv.ID)

	invAfter, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPendingVerification, invAfter.Status)
}

func TestRepository_CreateReceipt_MissingInvoice(t *testing.T) {
	repo, _ := testRepo(t)

	rcpt := entity.PaymentReceipt{
		ID:         uuid.Must(uuid.NewV4()),
		InvoiceID:  uuid.Must(uuid.NewV4()),
		FileURL:    "uploads/receipt.png",
		UploadedBy: uuid.Must(uuid.NewV4()),
		Status:     entity.ReceiptStatusSubmitted,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	err := repo.CreateReceipt(context.Background(), rcpt)
	require.Error(t, err)
}

func TestRepository_MarkOverdue(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	tr := createTrialRequest(t, repo, "past@example.com")
	past := createEnrollmentInvoice(t, repo, tr.ID, time.Now().Add(-time.Hour))

	tr2 := createTrialRequest(t, repo, "future@example.com")
	future := createEnrollmentInvoice(t, repo, tr2.ID, time.Now().Add(24*time.Hour))

	count, err := repo.MarkOverdue(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	pastAfter, err := repo.Invoice(ctx, past.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusOverdue, pastAfter.Status)

	futureAfter, err := repo.Invoice(ctx, future.ID)
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusUnpaid, futureAfter.Status)
}

func TestRepository_Invoices_Pagination(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		tr := createTrialRequest(t, repo, uuid.Must(uuid.NewV4()).String()+"@example.com")
		createEnrollmentInvoice(t, repo, tr.ID, time.Now().Add(24*time.Hour))
	}

	invoices, total, err := repo.Invoices(ctx, entity.InvoiceFilter{Page: 1, Limit: 2},
		entity.Scope{Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	require.Equal(t, 3, total)

	invoices, total, err = repo.Invoices(ctx, entity.InvoiceFilter{Page: 2, Limit: 2},
		entity.Scope{Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	require.Equal(t, 3, total)
}

func TestRepository_Invoice_NotFound(t *testing.T) {
	repo, _ := testRepo(t)

	_, err := repo.Invoice(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}
