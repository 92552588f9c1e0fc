package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateName is returned when an in-transaction uniqueness check
	// finds the name already taken by another row.
	ErrDuplicateName = errors.New("name already exists")

	// ErrCourseNotFound and ErrEquipmentNotFound identify which side of an
	// assignment reference is missing.
	ErrCourseNotFound    = errors.New("course not found")
	ErrEquipmentNotFound = errors.New("equipment not found")
)

// mapUniqueViolation converts a unique-index violation from either backend
// into ErrDuplicateName. The in-transaction probe catches most duplicates
// first; this is the backstop when the index itself fires.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateName
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateName
	}
	return err
}
