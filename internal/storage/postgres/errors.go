package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique index violation.
func IsUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key violation, either
// a dangling reference on insert/update or a RESTRICT on delete.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

func IsInvalidText(err error) bool {
	return pgCode(err) == codeInvalidText
}

// ValidID reports whether id can be compared against a uuid column.
// Callers treat anything else as a missing row instead of sending it to Postgres.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
