package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudRepository holds the read paths every collection shares. Writes stay
// on the concrete repositories because each one has its own reference
// rules.
type crudRepository[T any] struct {
	DB            *gorm.DB
	label         string
	order         string
	searchColumns []string
	preloads      []string
}

func (r crudRepository[T]) query(db *gorm.DB) *gorm.DB {
	q := db.Model(new(T))
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

func (r crudRepository[T]) List(params ListParams) ([]T, error) {
	items := []T{}
	q := params.apply(r.query(r.DB), r.searchColumns)
	if r.order != "" {
		q = q.Order(r.order)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r crudRepository[T]) Get(id uint) (*T, error) {
	return r.get(r.DB, id)
}

func (r crudRepository[T]) get(db *gorm.DB, id uint) (*T, error) {
	item := new(T)
	if err := r.query(db).Where("id = ?", id).First(item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(r.label, id)
		}
		return nil, err
	}
	return item, nil
}

func (r crudRepository[T]) Count() (int64, error) {
	var count int64
	err := r.DB.Model(new(T)).Count(&count).Error
	return count, err
}

func (r crudRepository[T]) create(tx *gorm.DB, item *T) error {
	return translateWrite(tx.Omit(clause.Associations).Create(item).Error)
}

func (r crudRepository[T]) save(tx *gorm.DB, item *T) error {
	return translateWrite(tx.Omit(clause.Associations).Save(item).Error)
}

// deleteByID removes the row and reports ErrNotFound when nothing matched.
func (r crudRepository[T]) deleteByID(tx *gorm.DB, id uint) error {
	res := tx.Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translateDelete(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(r.label, id)
	}
	return nil
}
