package repositories

import (
	"time"

	"bonded-wms/models"
	"bonded-wms/types"

	"gorm.io/gorm"
)

type BondLicenseRepository struct {
	crudRepository[models.BondLicense]
}

func NewBondLicenseRepository(db *gorm.DB) *BondLicenseRepository {
	return &BondLicenseRepository{crudRepository[models.BondLicense]{
		DB:            db,
		label:         "bond license",
		order:         "license_number",
		searchColumns: []string{"license_number"},
		preloads:      []string{"Warehouse"},
	}}
}

func (r *BondLicenseRepository) Create(b *models.BondLicense) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, b); err != nil {
			return err
		}
		return r.create(tx, b)
	})
}

func (r *BondLicenseRepository) Update(b *models.BondLicense) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, b); err != nil {
			return err
		}
		return r.save(tx, b)
	})
}

func (r *BondLicenseRepository) check(tx *gorm.DB, b *models.BondLicense) error {
	if err := ensureUnique(tx, &models.BondLicense{}, "license_number", b.LicenseNumber, b.ID, "license number"); err != nil {
		return err
	}
	return ensureExists(tx, &models.Warehouse{}, b.WarehouseID, "warehouse")
}

// Delete is blocked by import and export declarations.
func (r *BondLicenseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}
		if err := ensureUnreferenced(tx, &models.ImportDeclaration{}, "bond_license_id", id, "bond license", "import declarations"); err != nil {
			return err
		}
		if err := ensureUnreferenced(tx, &models.ExportDeclaration{}, "bond_license_id", id, "bond license", "export declarations"); err != nil {
			return err
		}
		return r.deleteByID(tx, id)
	})
}

// ExpiringBetween returns licenses whose expiry date falls in [from, to],
// soonest first.
func (r *BondLicenseRepository) ExpiringBetween(from, to time.Time) ([]models.BondLicense, error) {
	licenses := []models.BondLicense{}
	err := r.query(r.DB).
		Where("expiry_date >= ? AND expiry_date <= ?", types.DateOf(from), types.DateOf(to)).
		Order("expiry_date").
		Find(&licenses).Error
	return licenses, err
}

type ImportDeclarationRepository struct {
	crudRepository[models.ImportDeclaration]
}

func NewImportDeclarationRepository(db *gorm.DB) *ImportDeclarationRepository {
	return &ImportDeclarationRepository{crudRepository[models.ImportDeclaration]{
		DB:            db,
		label:         "import declaration",
		order:         "bill_of_entry_date DESC, id DESC",
		searchColumns: []string{"bill_of_entry_no"},
	}}
}

func (r *ImportDeclarationRepository) Create(d *models.ImportDeclaration) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, d); err != nil {
			return err
		}
		return r.create(tx, d)
	})
}

func (r *ImportDeclarationRepository) Update(d *models.ImportDeclaration) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, d); err != nil {
			return err
		}
		return r.save(tx, d)
	})
}

func (r *ImportDeclarationRepository) check(tx *gorm.DB, d *models.ImportDeclaration) error {
	if err := ensureUnique(tx, &models.ImportDeclaration{}, "bill_of_entry_no", d.BillOfEntryNo, d.ID, "bill of entry"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.Supplier{}, d.SupplierID, "supplier"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.BondLicense{}, d.BondLicenseID, "bond license"); err != nil {
		return err
	}
	return ensureExists(tx, &models.HSCode{}, d.HSCodeID, "hs code")
}

// Delete unlinks the declaration from any stock movement that cites it.
func (r *ImportDeclarationRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&models.StockMovement{}).Where("import_declaration_id = ?", id).
			Update("import_declaration_id", nil).Error; err != nil {
			return err
		}
		return r.deleteByID(tx, id)
	})
}

type ExportDeclarationRepository struct {
	crudRepository[models.ExportDeclaration]
}

func NewExportDeclarationRepository(db *gorm.DB) *ExportDeclarationRepository {
	return &ExportDeclarationRepository{crudRepository[models.ExportDeclaration]{
		DB:            db,
		label:         "export declaration",
		order:         "export_date DESC, id DESC",
		searchColumns: []string{"export_number"},
	}}
}

func (r *ExportDeclarationRepository) Create(d *models.ExportDeclaration) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, d); err != nil {
			return err
		}
		return r.create(tx, d)
	})
}

func (r *ExportDeclarationRepository) Update(d *models.ExportDeclaration) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, d); err != nil {
			return err
		}
		return r.save(tx, d)
	})
}

func (r *ExportDeclarationRepository) check(tx *gorm.DB, d *models.ExportDeclaration) error {
	if err := ensureUnique(tx, &models.ExportDeclaration{}, "export_number", d.ExportNumber, d.ID, "export number"); err != nil {
		return err
	}
	return ensureExists(tx, &models.BondLicense{}, d.BondLicenseID, "bond license")
}

func (r *ExportDeclarationRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := r.get(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&models.StockMovement{}).Where("export_declaration_id = ?", id).
			Update("export_declaration_id", nil).Error; err != nil {
			return err
		}
		return r.deleteByID(tx, id)
	})
}

type IOCORepository struct {
	crudRepository[models.IOCO]
}

func NewIOCORepository(db *gorm.DB) *IOCORepository {
	return &IOCORepository{crudRepository[models.IOCO]{
		DB:    db,
		label: "ioco",
		order: "effective_date DESC, id DESC",
	}}
}

func (r *IOCORepository) Create(i *models.IOCO) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, i); err != nil {
			return err
		}
		return r.create(tx, i)
	})
}

func (r *IOCORepository) Update(i *models.IOCO) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, i); err != nil {
			return err
		}
		return r.save(tx, i)
	})
}

func (r *IOCORepository) check(tx *gorm.DB, i *models.IOCO) error {
	if err := ensureExists(tx, &models.Product{}, i.ProductID, "product"); err != nil {
		return err
	}
	return ensureExists(tx, &models.HSCode{}, i.HSCodeID, "hs code")
}

func (r *IOCORepository) Delete(id uint) error {
	return r.deleteByID(r.DB, id)
}
