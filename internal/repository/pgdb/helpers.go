package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// postgresDuplicate сообщает, что запрос нарушил ограничение уникальности.
func postgresDuplicate(err error) bool {
	return hasPgCode(err, uniqueViolationCode)
}

// postgresForeignKeyViolation сообщает, что запрос нарушил внешний ключ.
func postgresForeignKeyViolation(err error) bool {
	return hasPgCode(err, foreignKeyViolationCode)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
