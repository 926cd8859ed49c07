package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
)

const unknownErrorMessage = "Something went wrong"

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func IsUniqueViolation(err error) bool {
	return Is(err, CodeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return Is(err, CodeForeignKeyViolation)
}

func IsNotNullViolation(err error) bool {
	return Is(err, CodeNotNullViolation)
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}

// ErrorMessage turns any fault into text fit for a caller. Postgres errors
// yield their server message, wrapped errors lose the WrapPathErr prefixes.
func ErrorMessage(err error) string {
	if err == nil {
		return unknownErrorMessage
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Message != "" {
		return pgErr.Message
	}

	msg := err.Error()
	for strings.HasPrefix(msg, "[") {
		end := strings.Index(msg, "] ")
		if end < 0 {
			break
		}
		msg = msg[end+2:]
	}

	if msg == "" {
		return unknownErrorMessage
	}
	return msg
}
