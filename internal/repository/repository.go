package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduboard/academy/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

const selectInvoice = `
SELECT id, type, amount, currency, due_date, status, student_id, trial_request_id,
       teacher_id, description, created_by, created_at, updated_at
FROM invoices`

// Invoice returns an invoice by id with its trial request and teacher
// eagerly loaded when linked.
func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, selectInvoice+" WHERE id = $1", id))
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.TrialRequestID.Valid {
		tr, err := r.TrialRequest(ctx, inv.TrialRequestID.UUID)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("load trial request: %w", err)
		}

		inv.TrialRequest = &tr
	}

	if inv.TeacherID.Valid {
		t, err := r.teacher(ctx, inv.TeacherID.UUID)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("load teacher: %w", err)
		}

		inv.Teacher = &t
	}

	return inv, nil
}

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) error {
	const q = `
	INSERT INTO invoices (
		id, type, amount, currency, due_date, status, student_id, trial_request_id,
		teacher_id, description, created_by, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(
		ctx,
		q,
		inv.ID,
		inv.Type,
		inv.Amount,
		inv.Currency,
		inv.DueDate,
		inv.Status,
		inv.StudentID,
		inv.TrialRequestID,
		inv.TeacherID,
		inv.Description,
		inv.CreatedBy,
		inv.CreatedAt,
		inv.UpdatedAt,
	)

	return err
}

// Invoices lists invoices narrowed by the filter and the acting user's scope.
func (r *Repository) Invoices(
	ctx context.Context,
	f entity.InvoiceFilter,
	scope entity.Scope,
) ([]entity.Invoice, int, error) {
	stmt := sq.Select(
		"id",
		"type",
		"amount",
		"currency",
		"due_date",
		"status",
		"student_id",
		"trial_request_id",
		"teacher_id",
		"description",
		"created_by",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("invoices").PlaceholderFormat(sq.Dollar)

	stmt = applyInvoiceScope(stmt, scope)
	stmt = applyInvoiceFilter(stmt, f).
		Limit(f.Limit).
		Offset(f.Page*f.Limit - f.Limit).
		OrderBy("created_at DESC")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var inv entity.Invoice

		var count int

		err = rows.Scan(
			&inv.ID,
			&inv.Type,
			&inv.Amount,
			&inv.Currency,
			&inv.DueDate,
			&inv.Status,
			&inv.StudentID,
			&inv.TrialRequestID,
			&inv.TeacherID,
			&inv.Description,
			&inv.CreatedBy,
			&inv.CreatedAt,
			&inv.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		invoices = append(invoices, inv)
	}

	return invoices, totalCount, nil
}

func applyInvoiceFilter(stmt sq.SelectBuilder, f entity.InvoiceFilter) sq.SelectBuilder {
	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.Type != nil {
		stmt = stmt.Where(sq.Eq{"type": *f.Type})
	}

	if f.CreatedFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"created_at": *f.CreatedFrom})
	}

	return stmt
}

const selectReceipt = `
SELECT id, invoice_id, file_url, uploaded_by, verification_status, verified_by,
       verified_at, rejection_reason, notes, created_at, updated_at
FROM payment_receipts`

func (r *Repository) Receipt(ctx context.Context, id uuid.UUID) (entity.PaymentReceipt, error) {
	return scanReceipt(r.db.QueryRow(ctx, selectReceipt+" WHERE id = $1", id))
}

// CreateReceipt records a proof-of-payment upload and moves the owning
// invoice to PENDING_VERIFICATION in the same transaction.
func (r *Repository) CreateReceipt(ctx context.Context, rcpt entity.PaymentReceipt) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const q = `
	INSERT INTO payment_receipts (
		id, invoice_id, file_url, uploaded_by, verification_status, verified_by,
		verified_at, rejection_reason, notes, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = tx.Exec(
		ctx,
		q,
		rcpt.ID,
		rcpt.InvoiceID,
		rcpt.FileURL,
		rcpt.UploadedBy,
		rcpt.Status,
		rcpt.VerifiedBy,
		rcpt.VerifiedAt,
		rcpt.RejectionReason,
		rcpt.Notes,
		rcpt.CreatedAt,
		rcpt.UpdatedAt,
	)
	if err != nil {
		return err
	}

	const updInvoice = `UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := tx.Exec(ctx, updInvoice, entity.InvoiceStatusPendingVerification, rcpt.CreatedAt, rcpt.InvoiceID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return tx.Commit(ctx)
}

const selectTrialRequest = `
SELECT id, student_name, contact_email, contact_phone, course, status, created_at, updated_at
FROM trial_requests`

func (r *Repository) TrialRequest(ctx context.Context, id uuid.UUID) (entity.TrialRequest, error) {
	return scanTrialRequest(r.db.QueryRow(ctx, selectTrialRequest+" WHERE id = $1", id))
}

func (r *Repository) CreateTrialRequest(ctx context.Context, tr entity.TrialRequest) error {
	const q = `
	INSERT INTO trial_requests (id, student_name, contact_email, contact_phone, course, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q, tr.ID, tr.StudentName, tr.ContactEmail, tr.ContactPhone,
		tr.Course, tr.Status, tr.CreatedAt, tr.UpdatedAt)

	return err
}

func (r *Repository) TrialRequests(ctx context.Context) (trs []entity.TrialRequest, err error) {
	rows, err := r.db.Query(ctx, selectTrialRequest+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		tr, err := scanTrialRequest(rows)
		if err != nil {
			return nil, err
		}

		trs = append(trs, tr)
	}

	return trs, nil
}

const selectStudent = `
SELECT id, user_id, full_name, contact_email, contact_phone, teacher_id, status, created_at, updated_at
FROM students`

// Students lists students narrowed by the acting user's scope.
func (r *Repository) Students(ctx context.Context, scope entity.Scope) ([]entity.Student, error) {
	stmt := sq.Select(
		"id",
		"user_id",
		"full_name",
		"contact_email",
		"contact_phone",
		"teacher_id",
		"status",
		"created_at",
		"updated_at",
	).From("students").PlaceholderFormat(sq.Dollar).OrderBy("created_at DESC")

	stmt = applyStudentScope(stmt, scope)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []entity.Student

	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}

		students = append(students, s)
	}

	return students, nil
}

// TeacherByUserID resolves a TEACHER-role user to their teacher profile.
func (r *Repository) TeacherByUserID(ctx context.Context, userID uuid.UUID) (entity.Teacher, error) {
	const q = `
	SELECT id, user_id, full_name, subject, created_at, updated_at
	FROM teachers WHERE user_id = $1`

	return scanTeacher(r.db.QueryRow(ctx, q, userID))
}

// StudentByUserID resolves a STUDENT-role user to their student profile.
func (r *Repository) StudentByUserID(ctx context.Context, userID uuid.UUID) (entity.Student, error) {
	return scanStudent(r.db.QueryRow(ctx, selectStudent+" WHERE user_id = $1", userID))
}

func (r *Repository) teacher(ctx context.Context, id uuid.UUID) (entity.Teacher, error) {
	const q = `
	SELECT id, user_id, full_name, subject, created_at, updated_at
	FROM teachers WHERE id = $1`

	return scanTeacher(r.db.QueryRow(ctx, q, id))
}

// MarkOverdue flips unpaid invoices whose due date has passed to OVERDUE and
// returns the number of invoices affected.
func (r *Repository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	const q = `UPDATE invoices SET status = $1, updated_at = $2 WHERE status = $3 AND due_date < $2`

	result, err := r.db.Exec(ctx, q, entity.InvoiceStatusOverdue, now, entity.InvoiceStatusUnpaid)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.Type,
		&inv.Amount,
		&inv.Currency,
		&inv.DueDate,
		&inv.Status,
		&inv.StudentID,
		&inv.TrialRequestID,
		&inv.TeacherID,
		&inv.Description,
		&inv.CreatedBy,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}

func scanReceipt(row pgx.Row) (rcpt entity.PaymentReceipt, err error) {
	err = row.Scan(
		&rcpt.ID,
		&rcpt.InvoiceID,
		&rcpt.FileURL,
		&rcpt.UploadedBy,
		&rcpt.Status,
		&rcpt.VerifiedBy,
		&rcpt.VerifiedAt,
		&rcpt.RejectionReason,
		&rcpt.Notes,
		&rcpt.CreatedAt,
		&rcpt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.PaymentReceipt{}, entity.ErrNotFound
		}

		return entity.PaymentReceipt{}, err
	}

	return rcpt, nil
}

func scanTrialRequest(row pgx.Row) (tr entity.TrialRequest, err error) {
	err = row.Scan(
		&tr.ID,
		&tr.StudentName,
		&tr.ContactEmail,
		&tr.ContactPhone,
		&tr.Course,
		&tr.Status,
		&tr.CreatedAt,
		&tr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.TrialRequest{}, entity.ErrNotFound
		}

		return entity.TrialRequest{}, err
	}

	return tr, nil
}

func scanStudent(row pgx.Row) (s entity.Student, err error) {
	err = row.Scan(
		&s.ID,
		&s.UserID,
		&s.FullName,
		&s.ContactEmail,
		&s.ContactPhone,
		&s.TeacherID,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Student{}, entity.ErrNotFound
		}

		return entity.Student{}, err
	}

	return s, nil
}

func scanTeacher(row pgx.Row) (t entity.Teacher, err error) {
	err = row.Scan(
		&t.ID,
		&t.UserID,
		&t.FullName,
		&t.Subject,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Teacher{}, entity.ErrNotFound
		}

		return entity.Teacher{}, err
	}

	return t, nil
}
