package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced by repositories so services can translate them
// into API-facing failures without inspecting driver details.
var (
	// ErrDuplicateKey reports a unique-constraint violation (duplicate
	// email or duplicate supplier tax id).
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidReference reports a foreign-key violation (supplier
	// pointing at a country that does not exist).
	ErrInvalidReference = errors.New("invalid reference")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrDuplicateKey
		case pgForeignKeyViolation:
			return ErrInvalidReference
		}
	}
	return err
}
