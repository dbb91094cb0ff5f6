package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound               = errors.New("record not found")
	ErrDuplicate              = errors.New("duplicate value")
	ErrProtected              = errors.New("record is still referenced")
	ErrInvalidReference       = errors.New("referenced record does not exist")
	ErrMovementAlreadyApplied = errors.New("stock movement already applied")
	ErrImmutable              = errors.New("record is immutable")
)

// translateWrite folds driver constraint errors raised by an insert or
// update into the package sentinels.
func translateWrite(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}

// translateDelete is translateWrite for deletes, where a foreign key
// violation means a protecting reference still exists.
func translateDelete(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrProtected, err)
	}
	return translateWrite(err)
}

func notFound(label string, id interface{}) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, label, id)
}
