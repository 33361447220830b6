package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/eduboard/academy/internal/entity"
	"github.com/eduboard/academy/internal/repository"
	"github.com/eduboard/academy/pkg/postgres"
)

var (
	poolOnce sync.Once
	pool     *pgxpool.Pool
)

// testRepo connects to the database named by TEST_POSTGRES_DSN, runs the
// migrations once and truncates all tables before each test.
func testRepo(t *testing.T) (*repository.Repository, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	poolOnce.Do(func() {
		ctx := context.Background()

		p, err := postgres.Connect(ctx, dsn, 4)
		require.NoError(t, err)

		err = postgres.UpMigrations(dsn)
		require.NoError(t, err)

		pool = p
	})

	_, err := pool.Exec(context.Background(),
		`TRUNCATE payment_receipts, invoices, trial_requests, students, teachers, users`)
	require.NoError(t, err)

	return repository.New(pool), pool
}

func createTrialRequest(t *testing.T, repo *repository.Repository, email string) entity.TrialRequest {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)

	tr := entity.TrialRequest{
		ID:           uuid.Must(uuid.NewV4()),
		StudentName:  "Aisha",
		ContactEmail: entity.NormalizeEmail(email),
		Status:       entity.TrialStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	require.NoError(t, repo.CreateTrialRequest(context.Background(), tr))

	return tr
}

func createEnrollmentInvoice(t *testing.T, repo *repository.Repository, trialID uuid.UUID, dueDate time.Time) entity.Invoice {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)

	inv := entity.Invoice{
		ID:             uuid.Must(uuid.NewV4()),
		Type:           entity.InvoiceTypeEnrollment,
		Amount:         decimal.RequireFromString("100.00"),
		Currency:       "USD",
		DueDate:        dueDate,
		Status:         entity.InvoiceStatusUnpaid,
		TrialRequestID: uuid.NullUUID{UUID: trialID, Valid: true},
		CreatedBy:      uuid.Must(uuid.NewV4()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	require.NoError(t, repo.CreateInvoice(context.Background(), inv))

	return inv
}

func createReceipt(t *testing.T, repo *repository.Repository, invoiceID uuid.UUID) entity.PaymentReceipt {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)

	rcpt := entity.PaymentReceipt{
		ID:         uuid.Must(uuid.NewV4()),
		InvoiceID:  invoiceID,
		FileURL:    "uploads/receipt.png",
		UploadedBy: uuid.Must(uuid.NewV4()),
		Status:     entity.ReceiptStatusSubmitted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	require.NoError(t, repo.CreateReceipt(context.Background(), rcpt))

	return rcpt
}

func approvalChange(invoice entity.Invoice, receipt entity.PaymentReceipt, provision *entity.ProvisionCommand) entity.VerificationChange {
	return entity.VerificationChange{
		InvoiceID: invoice.ID,
		Receipt: entity.ReceiptDecision{
			ReceiptID:  receipt.ID,
			Status:     entity.ReceiptStatusApproved,
			VerifiedBy: uuid.Must(uuid.NewV4()),
			VerifiedAt: time.Now().UTC().Truncate(time.Microsecond),
		},
		InvoiceStatus: entity.InvoiceStatusPaid,
		Provision:     provision,
	}
}

func provisionFor(invoice entity.Invoice, trialID uuid.UUID, email string) *entity.ProvisionCommand {
	return &entity.ProvisionCommand{
		UserID:         uuid.Must(uuid.NewV4()),
		StudentID:      uuid.Must(uuid.NewV4()),
		Email:          entity.NormalizeEmail(email),
		PasswordHash:   "$2a$10$fake.hash.for.tests.only",
		FullName:       "Aisha",
		TrialRequestID: trialID,
		InvoiceID:      invoice.ID,
	}
}
