package impl

import (
	domainerrors "leasing/internal/domain/errors"
	"leasing/internal/domain/repository"
	"leasing/internal/errors"
)

// mapStoreError turns repository errors into application errors. Missing
// units become ErrUnitNotFound; anything else is a store outage.
func mapStoreError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrUnitNotFound) {
		return domainerrors.ErrUnitNotFound.WrapMessage(op)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewStoreUnavailableError(errors.Wrap(err, op), op)
}
