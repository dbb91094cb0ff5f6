package repositories

import (
	"bonded-wms/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	crudRepository[models.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{crudRepository[models.Product]{
		DB:            db,
		label:         "product",
		order:         "name",
		searchColumns: []string{"sku", "name"},
		preloads:      []string{"Category", "Supplier", "HSCode", "UOM"},
	}}
}

func (r *ProductRepository) Create(p *models.Product) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, p); err != nil {
			return err
		}
		return r.create(tx, p)
	})
}

func (r *ProductRepository) Update(p *models.Product) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, p); err != nil {
			return err
		}
		return r.save(tx, p)
	})
}

func (r *ProductRepository) check(tx *gorm.DB, p *models.Product) error {
	if err := ensureUnique(tx, &models.Product{}, "sku", p.SKU, p.ID, "sku"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.Category{}, p.CategoryID, "category"); err != nil {
		return err
	}
	if err := ensureOptionalExists(tx, &models.Supplier{}, p.SupplierID, "supplier"); err != nil {
		return err
	}
	if err := ensureOptionalExists(tx, &models.HSCode{}, p.HSCodeID, "hs code"); err != nil {
		return err
	}
	return ensureOptionalExists(tx, &models.UOM{}, p.UOMID, "uom")
}

// ExistsBySKU is used by the spreadsheet import to skip known products.
func (r *ProductRepository) ExistsBySKU(sku string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Product{}).Where("sku = ?", sku).Count(&count).Error
	return count > 0, err
}

// Delete cascades to the product's stock rows, movements and IOCO entries.
func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}
		for _, dependent := range []interface{}{&models.StockMovement{}, &models.Stock{}, &models.IOCO{}} {
			if err := tx.Where("product_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return r.deleteByID(tx, id)
	})
}
