package repository

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds reported by every store implementation. Callers match them
// with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrForeignKeyViolation = errors.New("referenced row does not exist")
	ErrUniqueViolation     = errors.New("duplicate value for unique field")
	ErrStorage             = errors.New("storage failure")
)

// Entity names used in failure messages.
const (
	EntityUser    = "User"
	EntityPost    = "Post"
	EntityComment = "Comment"
)

// ConstraintError describes a rejected row. Kind is one of the sentinels above.
type ConstraintError struct {
	Kind    error
	Entity  string
	Field   string
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }

func (e *ConstraintError) Unwrap() error { return e.Kind }

func NotFound(entity string) error {
	return &ConstraintError{Kind: ErrNotFound, Entity: entity, Message: entity + " not found"}
}

func Validation(entity, field, msg string) error {
	return &ConstraintError{Kind: ErrValidation, Entity: entity, Field: field, Message: msg}
}

// ForeignKey reports that field does not point at an existing row of target.
func ForeignKey(entity, field, target string) error {
	return &ConstraintError{
		Kind:    ErrForeignKeyViolation,
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("%s does not reference an existing %s", field, target),
	}
}

func Unique(entity, field string) error {
	return &ConstraintError{
		Kind:    ErrUniqueViolation,
		Entity:  entity,
		Field:   field,
		Message: fmt.Sprintf("A %s with this %s already exists", strings.ToLower(entity), field),
	}
}

// Storage wraps any failure that is not a constraint outcome.
func Storage(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
