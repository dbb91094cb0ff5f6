package repositories

import (
	"bonded-wms/models"

	"gorm.io/gorm"
)

type SupplierRepository struct {
	crudRepository[models.Supplier]
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{crudRepository[models.Supplier]{
		DB:            db,
		label:         "supplier",
		order:         "name",
		searchColumns: []string{"name", "email", "phone"},
	}}
}

func (r *SupplierRepository) Create(s *models.Supplier) error {
	return r.create(r.DB, s)
}

func (r *SupplierRepository) Update(s *models.Supplier) error {
	return r.save(r.DB, s)
}

// Delete is blocked by import declarations; products lose their supplier.
func (r *SupplierRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}
		if err := ensureUnreferenced(tx, &models.ImportDeclaration{}, "supplier_id", id, "supplier", "import declarations"); err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).Where("supplier_id = ?", id).Update("supplier_id", nil).Error; err != nil {
			return err
		}
		return r.deleteByID(tx, id)
	})
}

type CategoryRepository struct {
	crudRepository[models.Category]
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{crudRepository[models.Category]{
		DB:            db,
		label:         "category",
		order:         "name",
		searchColumns: []string{"name"},
	}}
}

func (r *CategoryRepository) Create(c *models.Category) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.Category{}, "name", c.Name, 0, "category"); err != nil {
			return err
		}
		return r.create(tx, c)
	})
}

func (r *CategoryRepository) Update(c *models.Category) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.Category{}, "name", c.Name, c.ID, "category"); err != nil {
			return err
		}
		return r.save(tx, c)
	})
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}
		if err := ensureUnreferenced(tx, &models.Product{}, "category_id", id, "category", "products"); err != nil {
			return err
		}
		return r.deleteByID(tx, id)
	})
}

type UOMRepository struct {
	crudRepository[models.UOM]
}

func NewUOMRepository(db *gorm.DB) *UOMRepository {
	return &UOMRepository{crudRepository[models.UOM]{
		DB:            db,
		label:         "uom",
		order:         "code",
		searchColumns: []string{"code", "name"},
	}}
}

func (r *UOMRepository) Create(u *models.UOM) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.UOM{}, "code", u.Code, 0, "uom"); err != nil {
			return err
		}
		return r.create(tx, u)
	})
}

func (r *UOMRepository) Update(u *models.UOM) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.UOM{}, "code", u.Code, u.ID, "uom"); err != nil {
			return err
		}
		return r.save(tx, u)
	})
}

// Delete clears the unit from any product using it.
func (r *UOMRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).Where("uom_id = ?", id).Update("uom_id", nil).Error; err != nil {
			return err
		}
		return r.deleteByID(tx, id)
	})
}

type WarehouseRepository struct {
	crudRepository[models.Warehouse]
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{crudRepository[models.Warehouse]{
		DB:            db,
		label:         "warehouse",
		order:         "name",
		searchColumns: []string{"name", "location"},
	}}
}

func (r *WarehouseRepository) Create(w *models.Warehouse) error {
	return r.create(r.DB, w)
}

func (r *WarehouseRepository) Update(w *models.Warehouse) error {
	return r.save(r.DB, w)
}

// Delete cascades to the warehouse's stock, movements and bond licenses.
// It is refused while one of those licenses backs a customs declaration.
func (r *WarehouseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}

		for _, ref := range []struct {
			model interface{}
			name  string
		}{
			{&models.ImportDeclaration{}, "import declarations"},
			{&models.ExportDeclaration{}, "export declarations"},
		} {
			licenses := tx.Model(&models.BondLicense{}).Select("id").Where("warehouse_id = ?", id)
			var count int64
			if err := tx.Model(ref.model).Where("bond_license_id IN (?)", licenses).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return protectedf("warehouse", id, count, "bond licenses referenced by "+ref.name)
			}
		}

		if err := tx.Where("warehouse_id = ?", id).Delete(&models.StockMovement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("warehouse_id = ?", id).Delete(&models.Stock{}).Error; err != nil {
			return err
		}
		if err := tx.Where("warehouse_id = ?", id).Delete(&models.BondLicense{}).Error; err != nil {
			return translateDelete(err)
		}
		return r.deleteByID(tx, id)
	})
}

type HSCodeRepository struct {
	crudRepository[models.HSCode]
}

func NewHSCodeRepository(db *gorm.DB) *HSCodeRepository {
	return &HSCodeRepository{crudRepository[models.HSCode]{
		DB:            db,
		label:         "hs code",
		order:         "code",
		searchColumns: []string{"code", "description"},
	}}
}

func (r *HSCodeRepository) Create(h *models.HSCode) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.HSCode{}, "code", h.Code, 0, "hs code"); err != nil {
			return err
		}
		return r.create(tx, h)
	})
}

func (r *HSCodeRepository) Update(h *models.HSCode) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.HSCode{}, "code", h.Code, h.ID, "hs code"); err != nil {
			return err
		}
		return r.save(tx, h)
	})
}

// Delete is blocked by products, IOCO entries and import declarations.
func (r *HSCodeRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}
		if err := ensureUnreferenced(tx, &models.Product{}, "hs_code_id", id, "hs code", "products"); err != nil {
			return err
		}
		if err := ensureUnreferenced(tx, &models.IOCO{}, "hs_code_id", id, "hs code", "ioco entries"); err != nil {
			return err
		}
		if err := ensureUnreferenced(tx, &models.ImportDeclaration{}, "hs_code_id", id, "hs code", "import declarations"); err != nil {
			return err
		}
		return r.deleteByID(tx, id)
	})
}
