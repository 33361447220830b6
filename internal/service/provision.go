package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/eduboard/academy/internal/entity"
)

// secretLen is the number of random bytes in a generated credential;
// hex-encoded it yields a 16-character password.
const secretLen = 8

// buildProvision prepares the account-creation branch for an approved
// enrollment invoice. It returns the command with the hashed credential and
// the plaintext secret, which must never be persisted.
func buildProvision(invoice entity.Invoice) (entity.ProvisionCommand, string, error) {
	tr := invoice.TrialRequest

	secret, err := generateSecret()
	if err != nil {
		return entity.ProvisionCommand{}, "", fmt.Errorf("generate secret: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return entity.ProvisionCommand{}, "", fmt.Errorf("hash secret: %w", err)
	}

	cmd := entity.ProvisionCommand{
		UserID:         uuid.Must(uuid.NewV4()),
		StudentID:      uuid.Must(uuid.NewV4()),
		Email:          entity.NormalizeEmail(tr.ContactEmail),
		PasswordHash:   string(hash),
		FullName:       tr.StudentName,
		ContactPhone:   tr.ContactPhone,
		TeacherID:      invoice.TeacherID,
		TrialRequestID: tr.ID,
		InvoiceID:      invoice.ID,
	}

	return cmd, secret, nil
}

func generateSecret() (string, error) {
	b := make([]byte, secretLen)

	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
