package postgres

import (
	"errors"

	"github.com/lib/pq"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// mapError turns constraint violations into domain errors and leaves
// everything else untouched.
func mapError(err error, resource string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation, pqCheckViolation:
		return domain.NewConflict(resource, err)
	case pqForeignKeyViolation:
		return &domain.DomainError{Kind: domain.KindNotFound, Msg: resource, Err: err}
	}

	return err
}
