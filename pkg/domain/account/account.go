// Package account holds the Account aggregate and its validation rules.
package account

import (
	"time"

	"github.com/amirasaad/accounts/pkg/domain"
)

// Account represents a single customer record. It is a transient in-memory
// representation; storage is owned by the repository layer.
type Account struct {
	ID          int64
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  time.Time
}

// New validates the given attributes and returns a well-formed Account.
// Name, email and address are required; a zero DateJoined defaults to today.
// A missing attribute is reported as a *domain.FieldError naming the field.
func New(name, email, address, phoneNumber string, dateJoined time.Time) (*Account, error) {
	switch {
	case name == "":
		return nil, domain.NewFieldError("name", "is required")
	case email == "":
		return nil, domain.NewFieldError("email", "is required")
	case address == "":
		return nil, domain.NewFieldError("address", "is required")
	}
	if dateJoined.IsZero() {
		dateJoined = time.Now().UTC()
	}
	return &Account{
		Name:        name,
		Email:       email,
		Address:     address,
		PhoneNumber: phoneNumber,
		DateJoined:  truncateToDate(dateJoined),
	}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
