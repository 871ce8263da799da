package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a unique constraint violation and,
// when it can tell, which column caused it.
func uniqueViolation(err error, columns ...string) (string, bool) {
	if err == nil {
		return "", false
	}

	var hint string
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}
		hint = pgErr.ConstraintName + " " + pgErr.Detail
	case errors.Is(err, gorm.ErrDuplicatedKey):
		hint = err.Error()
	default:
		msg := strings.ToLower(err.Error())
		if !strings.Contains(msg, "duplicate key") &&
			!strings.Contains(msg, "unique constraint") &&
			!strings.Contains(msg, pgUniqueViolation) {
			return "", false
		}
		hint = msg
	}

	hint = strings.ToLower(hint)
	for _, col := range columns {
		if strings.Contains(hint, col) {
			return col, true
		}
	}
	return "", true
}
