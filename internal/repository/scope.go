package repository

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/eduboard/academy/internal/entity"
)

// applyInvoiceScope narrows an invoice query by role: ADMIN sees everything,
// TEACHER only invoices assigned to their teacher profile, STUDENT only their
// own invoices.
func applyInvoiceScope(stmt sq.SelectBuilder, s entity.Scope) sq.SelectBuilder {
	switch s.Role {
	case entity.RoleTeacher:
		return stmt.Where(sq.Eq{"teacher_id": s.TeacherID.UUID})
	case entity.RoleStudent:
		return stmt.Where(sq.Eq{"student_id": s.StudentID.UUID})
	default:
		return stmt
	}
}

func applyStudentScope(stmt sq.SelectBuilder, s entity.Scope) sq.SelectBuilder {
	switch s.Role {
	case entity.RoleTeacher:
		return stmt.Where(sq.Eq{"teacher_id": s.TeacherID.UUID})
	case entity.RoleStudent:
		return stmt.Where(sq.Eq{"id": s.StudentID.UUID})
	default:
		return stmt
	}
}
