package repository

import (
	"errors"

	"github.com/amirasaad/accounts/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// This keeps infrastructure concerns (database errors) within the
// infrastructure layer. Traverses the error chain because GORM wraps the
// underlying driver errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		if errors.Is(currentErr, gorm.ErrRecordNotFound) {
			return domain.ErrAccountNotFound
		}
		currentErr = errors.Unwrap(currentErr)
	}

	// Return original error if no mapping found
	return err
}
