// Package dto defines the data-transfer shapes passed between the service
// layer and the repositories.
package dto

import "time"

// AccountRead is a read-optimized DTO for account queries and API responses.
type AccountRead struct {
	ID          int64
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  time.Time
}

// AccountCreate is a DTO for creating a new account. The id is assigned by
// the store.
type AccountCreate struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  time.Time
}

// AccountUpdate is a DTO for a full-record replace. Partial updates are not
// supported, so every field is written.
type AccountUpdate struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
	DateJoined  time.Time
}
