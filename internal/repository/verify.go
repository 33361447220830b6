package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/eduboard/academy/internal/entity"
)

const pgUniqueViolation = "23505"

// ApplyVerification executes a verification decision as one atomic
// transaction: the receipt decision, the invoice status transition and, when
// the change carries a provision command, the student-account branch. Either
// all writes commit or none do.
func (r *Repository) ApplyVerification(
	ctx context.Context,
	change entity.VerificationChange,
) (entity.ProvisionOutcome, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.ProvisionOutcome{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	outcome, err := applyVerification(ctx, tx, change)
	if err != nil {
		return entity.ProvisionOutcome{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.ProvisionOutcome{}, fmt.Errorf("commit: %w", err)
	}

	return outcome, nil
}

func applyVerification(ctx context.Context, tx pgx.Tx, change entity.VerificationChange) (entity.ProvisionOutcome, error) {
	err := updateReceipt(ctx, tx, change)
	if err != nil {
		return entity.ProvisionOutcome{}, err
	}

	const updInvoice = `UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := tx.Exec(ctx, updInvoice, change.InvoiceStatus, change.Receipt.VerifiedAt, change.InvoiceID)
	if err != nil {
		return entity.ProvisionOutcome{}, fmt.Errorf("update invoice status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ProvisionOutcome{}, fmt.Errorf("invoice %s: %w", change.InvoiceID, entity.ErrNotFound)
	}

	if change.Provision == nil {
		return entity.ProvisionOutcome{}, nil
	}

	return provisionStudent(ctx, tx, *change.Provision, change.Receipt.VerifiedAt)
}

// updateReceipt applies the decision with a compare-and-set on the APPROVED
// terminal state, so two concurrent approvals of the same receipt resolve
// into one success and one conflict.
func updateReceipt(ctx context.Context, tx pgx.Tx, change entity.VerificationChange) error {
	const q = `
	UPDATE payment_receipts
	SET verification_status = $1, verified_by = $2, verified_at = $3,
	    rejection_reason = $4, notes = $5, updated_at = $3
	WHERE id = $6 AND invoice_id = $7 AND verification_status <> $8`

	d := change.Receipt

	result, err := tx.Exec(ctx, q,
		d.Status, d.VerifiedBy, d.VerifiedAt, d.RejectionReason, d.Notes,
		d.ReceiptID, change.InvoiceID, entity.ReceiptStatusApproved)
	if err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	// Nothing matched: distinguish a missing receipt, a receipt approved by a
	// concurrent decision, and a receipt owned by another invoice.
	var (
		invoiceID uuid.UUID
		status    entity.ReceiptStatus
	)

	err = tx.QueryRow(ctx,
		`SELECT invoice_id, verification_status FROM payment_receipts WHERE id = $1`,
		d.ReceiptID).Scan(&invoiceID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("receipt %s: %w", d.ReceiptID, entity.ErrNotFound)
		}

		return fmt.Errorf("inspect receipt: %w", err)
	}

	if invoiceID != change.InvoiceID {
		return fmt.Errorf("receipt %s, invoice %s: %w", d.ReceiptID, change.InvoiceID, entity.ErrInvalidRelation)
	}

	return fmt.Errorf("receipt %s: %w", d.ReceiptID, entity.ErrAlreadyApproved)
}

// provisionStudent creates exactly one {User, Student} pair per contact
// email. When a student already exists for the email, or a concurrent insert
// wins the unique-index race, the branch degrades into "found existing" and
// still converts the trial request.
func provisionStudent(
	ctx context.Context,
	tx pgx.Tx,
	cmd entity.ProvisionCommand,
	decidedAt time.Time,
) (entity.ProvisionOutcome, error) {
	existingID, err := studentIDByEmail(ctx, tx, cmd.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return entity.ProvisionOutcome{}, fmt.Errorf("lookup student by email: %w", err)
	}

	if err == nil {
		err = convertTrialRequest(ctx, tx, cmd.TrialRequestID, decidedAt)
		if err != nil {
			return entity.ProvisionOutcome{}, err
		}

		return entity.ProvisionOutcome{
			StudentCreated: false,
			StudentID:      uuid.NullUUID{UUID: existingID, Valid: true},
		}, nil
	}

	// Savepoint, so a unique violation aborts only the insert attempt and the
	// outer transaction can retry the lookup.
	inner, err := tx.Begin(ctx)
	if err != nil {
		return entity.ProvisionOutcome{}, fmt.Errorf("begin savepoint: %w", err)
	}

	err = insertCredentials(ctx, inner, cmd, decidedAt)
	if err != nil {
		_ = inner.Rollback(ctx)

		if !isUniqueViolation(err) {
			return entity.ProvisionOutcome{}, err
		}

		// Someone else provisioned this email concurrently.
		existingID, lookErr := studentIDByEmail(ctx, tx, cmd.Email)
		if lookErr != nil {
			return entity.ProvisionOutcome{}, fmt.Errorf("%w: email %q taken but student lookup failed: %s",
				entity.ErrAlreadyExists, cmd.Email, lookErr)
		}

		convErr := convertTrialRequest(ctx, tx, cmd.TrialRequestID, decidedAt)
		if convErr != nil {
			return entity.ProvisionOutcome{}, convErr
		}

		return entity.ProvisionOutcome{
			StudentCreated: false,
			StudentID:      uuid.NullUUID{UUID: existingID, Valid: true},
		}, nil
	}

	err = inner.Commit(ctx)
	if err != nil {
		return entity.ProvisionOutcome{}, fmt.Errorf("commit savepoint: %w", err)
	}

	const linkInvoice = `UPDATE invoices SET student_id = $1, updated_at = $2 WHERE id = $3`

	_, err = tx.Exec(ctx, linkInvoice, cmd.StudentID, decidedAt, cmd.InvoiceID)
	if err != nil {
		return entity.ProvisionOutcome{}, fmt.Errorf("link invoice to student: %w", err)
	}

	err = convertTrialRequest(ctx, tx, cmd.TrialRequestID, decidedAt)
	if err != nil {
		return entity.ProvisionOutcome{}, err
	}

	return entity.ProvisionOutcome{
		StudentCreated: true,
		StudentID:      uuid.NullUUID{UUID: cmd.StudentID, Valid: true},
	}, nil
}

func insertCredentials(ctx context.Context, tx pgx.Tx, cmd entity.ProvisionCommand, decidedAt time.Time) error {
	const insertUser = `
	INSERT INTO users (id, email, password_hash, role, must_reset_password, created_at, updated_at)
	VALUES ($1, $2, $3, $4, TRUE, $5, $5)`

	_, err := tx.Exec(ctx, insertUser, cmd.UserID, cmd.Email, cmd.PasswordHash, entity.RoleStudent, decidedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	const insertStudent = `
	INSERT INTO students (id, user_id, full_name, contact_email, contact_phone, teacher_id, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	_, err = tx.Exec(ctx, insertStudent, cmd.StudentID, cmd.UserID, cmd.FullName,
		cmd.Email, cmd.ContactPhone, cmd.TeacherID, entity.StudentStatusActive, decidedAt)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}

	return nil
}

func studentIDByEmail(ctx context.Context, tx pgx.Tx, email string) (uuid.UUID, error) {
	var id uuid.UUID

	err := tx.QueryRow(ctx,
		`SELECT id FROM students WHERE lower(contact_email) = $1`,
		entity.NormalizeEmail(email)).Scan(&id)

	return id, err
}

func convertTrialRequest(ctx context.Context, tx pgx.Tx, id uuid.UUID, decidedAt time.Time) error {
	const q = `UPDATE trial_requests SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := tx.Exec(ctx, q, entity.TrialStatusConverted, decidedAt, id)
	if err != nil {
		return fmt.Errorf("convert trial request: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trial request %s: %w", id, entity.ErrNotFound)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
