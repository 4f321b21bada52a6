package services

import (
	"errors"
	"fmt"

	"github.com/nimasrn/ngo-backend/internal/model"
	"github.com/nimasrn/ngo-backend/internal/repository"
)

var (
	ErrNotFound = errors.New("not found")

	ErrUserNotFound        = fmt.Errorf("User %w", ErrNotFound)
	ErrBeneficiaryNotFound = fmt.Errorf("Beneficiary %w", ErrNotFound)
	ErrDonationNotFound    = fmt.Errorf("Donation %w", ErrNotFound)
	ErrEventNotFound       = fmt.Errorf("Event %w", ErrNotFound)
	ErrVolunteerNotFound   = fmt.Errorf("Volunteer %w", ErrNotFound)
	ErrProgramNotFound     = fmt.Errorf("Program %w", ErrNotFound)

	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// ValidationError marks caller mistakes that map to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(err error) error {
	return &ValidationError{Message: err.Error()}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// translate maps repository.ErrNotFound to the entity specific error and
// passes everything else through wrapped with op.
func translate(err error, notFound error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func ownerID(identity *model.Identity) *int64 {
	if identity == nil || identity.ID == 0 {
		return nil
	}
	id := identity.ID
	return &id
}
