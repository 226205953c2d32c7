package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrInvalidInput indicates a required field is missing or could not be parsed
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidStatus indicates a status outside the entity's allowed set
	ErrInvalidStatus = errors.New("invalid status")
	// ErrForeignKeyViolation indicates a reference to a parent row that does not exist
	ErrForeignKeyViolation = errors.New("referenced record does not exist")
)

// translateWriteError maps driver errors surfaced by gorm onto service errors
func translateWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKeyViolation
	default:
		return err
	}
}
