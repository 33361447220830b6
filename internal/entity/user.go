package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, string(r))
	}
}

// User is a login credential. System-provisioned accounts carry
// MustResetPassword=true, forcing a password change on first login.
type User struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	Role              Role
	MustResetPassword bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AuthUser is the authenticated actor extracted from a verified JWT.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

type UserClaims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
	jwt.RegisteredClaims
}
