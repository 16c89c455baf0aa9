package database

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrDuplicateKey нарушено ограничение уникальности (username/email/phone)
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound запись или связанная запись не существует
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation бизнес-правило запрещает операцию
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrValidation входные данные вне допустимого диапазона
	ErrValidation = errors.New("validation error")
)

// translateSQLError maps driver errors to the store's sentinel errors.
func translateSQLError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		switch se.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrDuplicateKey
		case sqlite3.ErrConstraintForeignKey:
			return ErrNotFound
		case sqlite3.ErrConstraintCheck:
			return ErrValidation
		}
	}
	return err
}
