package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "ACTIVE"
	StudentStatusInactive StudentStatus = "INACTIVE"
	StudentStatusTrial    StudentStatus = "TRIAL"
)

func (s StudentStatus) String() string {
	return string(s)
}

func (s StudentStatus) Validate() error {
	switch s {
	case StudentStatusActive, StudentStatusInactive, StudentStatusTrial:
		return nil
	default:
		return fmt.Errorf("%w: unknown student status %q", ErrInvalidArgument, string(s))
	}
}

// Student is a converted learner. UserID is null when the student has no
// login account.
type Student struct {
	ID           uuid.UUID
	UserID       uuid.NullUUID
	FullName     string
	ContactEmail string
	ContactPhone string
	TeacherID    uuid.NullUUID
	Status       StudentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Teacher struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FullName  string
	Subject   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
