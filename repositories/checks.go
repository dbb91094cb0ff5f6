package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// ensureUnique fails with ErrDuplicate when another row already holds value
// in column. excludeID skips the row being updated.
func ensureUnique(tx *gorm.DB, model interface{}, column string, value interface{}, excludeID uint, label string) error {
	var count int64
	q := tx.Model(model).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s %q already exists", ErrDuplicate, label, fmt.Sprint(value))
	}
	return nil
}

func ensureExists(tx *gorm.DB, model interface{}, id uint, label string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s %d", ErrInvalidReference, label, id)
	}
	return nil
}

func ensureOptionalExists(tx *gorm.DB, model interface{}, id *uint, label string) error {
	if id == nil {
		return nil
	}
	return ensureExists(tx, model, *id, label)
}

// ensureUnreferenced fails with ErrProtected while any row of model points
// at id through column.
func ensureUnreferenced(tx *gorm.DB, model interface{}, column string, id uint, label, referencedBy string) error {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return protectedf(label, id, count, referencedBy)
	}
	return nil
}

func protectedf(label string, id uint, count int64, referencedBy string) error {
	return fmt.Errorf("%w: %s %d is referenced by %d %s", ErrProtected, label, id, count, referencedBy)
}
