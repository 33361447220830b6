package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type TrialStatus string

const (
	TrialStatusPending   TrialStatus = "PENDING"
	TrialStatusScheduled TrialStatus = "SCHEDULED"
	TrialStatusCompleted TrialStatus = "COMPLETED"
	TrialStatusConverted TrialStatus = "CONVERTED"
	TrialStatusCancelled TrialStatus = "CANCELLED"
)

func (s TrialStatus) String() string {
	return string(s)
}

func (s TrialStatus) Validate() error {
	switch s {
	case TrialStatusPending, TrialStatusScheduled, TrialStatusCompleted,
		TrialStatusConverted, TrialStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown trial request status %q", ErrInvalidArgument, string(s))
	}
}

// TrialRequest is a prospective-student inquiry. It transitions to CONVERTED
// at most once, when an enrollment payment for it is approved.
type TrialRequest struct {
	ID           uuid.UUID
	StudentName  string
	ContactEmail string
	ContactPhone string
	Course       string
	Status       TrialStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail is the canonical form used for duplicate detection during
// provisioning. Comparison is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
