package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes we react to.
const pgUniqueViolation = "23505"

func IsUniqueViolation(err error) bool {
	return isPgCode(err, pgUniqueViolation)
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
