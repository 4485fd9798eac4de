package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the record a caller asked for does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing required field, an out-of-range value or
// an unknown enum label.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ForeignKeyError reports a referential-integrity violation: a referenced
// parent row that does not exist, or an attempt to delete a row that
// dependent rows still reference.
type ForeignKeyError struct {
	Entity string
	ID     uint
	Reason string
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Entity, e.ID, e.Reason)
}

func missingParent(entity string, id uint) *ForeignKeyError {
	return &ForeignKeyError{Entity: entity, ID: id, Reason: "does not exist"}
}

func stillReferenced(entity string, id uint, by string) *ForeignKeyError {
	return &ForeignKeyError{Entity: entity, ID: id, Reason: "still referenced by " + by}
}

// UniquenessError reports a duplicate value on a unique column.
type UniquenessError struct {
	Field string
	Value string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// parentExists verifies a referenced parent row is present inside the same
// transaction as the write that depends on it.
func parentExists(tx *gorm.DB, model any, entity string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return missingParent(entity, id)
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
