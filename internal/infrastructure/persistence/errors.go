package persistence

import (
	"errors"

	"gorm.io/gorm"

	"github.com/finvoice/backend/internal/domain/shared"
)

// translateWriteError maps constraint violations surfaced by GORM's error
// translation to domain errors. The resource name reads like "invoice" or
// "tax header" and ends up in the message shown to API clients.
func translateWriteError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.NewAlreadyExistsError("%s already exists", resource)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return shared.NewReferenceInUseError(resource)
	}
	return err
}
