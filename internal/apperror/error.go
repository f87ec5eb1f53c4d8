package apperror

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

type Code string

const (
	CodeValidation Code = "validation"
	CodeNotFound   Code = "not_found"
	CodeConflict   Code = "conflict"
	CodeInternal   Code = "internal"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func GetCode(err error) Code {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// FromDatabase turns constraint violations reported by postgres or sqlite into
// coded errors. Other errors are returned unchanged.
func FromDatabase(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return New(CodeConflict, "resource with the same unique attributes already exists")
		case "23503":
			return New(CodeValidation, "invalid foreign key reference")
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return New(CodeConflict, "resource with the same unique attributes already exists")
		case sqlite3.ErrConstraintForeignKey:
			return New(CodeValidation, "invalid foreign key reference")
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return New(CodeConflict, "resource with the same unique attributes already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return New(CodeValidation, "invalid foreign key reference")
	}

	return err
}
