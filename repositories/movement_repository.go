package repositories

import (
	"errors"
	"time"

	"bonded-wms/models"
	"bonded-wms/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovementRepository struct {
	DB *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *MovementRepository {
	return &MovementRepository{DB: db}
}

func (r *MovementRepository) List(params ListParams) ([]models.StockMovement, error) {
	movements := []models.StockMovement{}
	q := params.apply(r.DB.Model(&models.StockMovement{}).Preload("Product").Preload("Warehouse"),
		[]string{"document_number", "reference"})
	err := q.Order("created_at DESC, id DESC").Find(&movements).Error
	return movements, err
}

func (r *MovementRepository) Get(id types.SnowflakeID) (*models.StockMovement, error) {
	return r.get(r.DB, id)
}

func (r *MovementRepository) get(db *gorm.DB, id types.SnowflakeID) (*models.StockMovement, error) {
	var m models.StockMovement
	err := db.Preload("Product").Preload("Warehouse").Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("stock movement", id)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovementRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&models.StockMovement{}).Count(&count).Error
	return count, err
}

// Create inserts the movement inside tx after checking every reference it
// carries.
func (r *MovementRepository) Create(tx *gorm.DB, m *models.StockMovement) error {
	if err := r.checkReferences(tx, m); err != nil {
		return err
	}
	return translateWrite(tx.Omit(clause.Associations).Create(m).Error)
}

func (r *MovementRepository) checkReferences(tx *gorm.DB, m *models.StockMovement) error {
	if err := ensureExists(tx, &models.Product{}, m.ProductID, "product"); err != nil {
		return err
	}
	if err := ensureExists(tx, &models.Warehouse{}, m.WarehouseID, "warehouse"); err != nil {
		return err
	}
	if err := ensureOptionalExists(tx, &models.ImportDeclaration{}, m.ImportDeclarationID, "import declaration"); err != nil {
		return err
	}
	return ensureOptionalExists(tx, &models.ExportDeclaration{}, m.ExportDeclarationID, "export declaration")
}

// MarkApplied claims the movement for the ledger. It reports false when
// the movement was already applied, so a retried apply cannot count twice.
func (r *MovementRepository) MarkApplied(tx *gorm.DB, id types.SnowflakeID, at time.Time) (bool, error) {
	res := tx.Model(&models.StockMovement{}).
		Where("id = ? AND applied_at IS NULL", id).
		Update("applied_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete removes the movement row. Stock is left as it is: a deleted
// movement does not reverse its effect.
func (r *MovementRepository) Delete(id types.SnowflakeID) error {
	res := r.DB.Where("id = ?", id).Delete(&models.StockMovement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("stock movement", id)
	}
	return nil
}

// UpdatePaperwork saves the descriptive fields of a movement. Product,
// warehouse, type and quantity are never written here.
func (r *MovementRepository) UpdatePaperwork(m *models.StockMovement) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := r.checkReferences(tx, m); err != nil {
			return err
		}
		res := tx.Model(&models.StockMovement{}).Where("id = ?", m.ID).
			Select("reason", "reference", "document_number", "document_date",
				"import_declaration_id", "export_declaration_id", "remarks", "updated_at").
			Updates(map[string]interface{}{
				"reason":                m.Reason,
				"reference":             m.Reference,
				"document_number":       m.DocumentNumber,
				"document_date":         m.DocumentDate,
				"import_declaration_id": m.ImportDeclarationID,
				"export_declaration_id": m.ExportDeclarationID,
				"remarks":               m.Remarks,
				"updated_at":            tx.NowFunc(),
			})
		if res.Error != nil {
			return translateWrite(res.Error)
		}
		if res.RowsAffected == 0 {
			return notFound("stock movement", m.ID)
		}
		return nil
	})
}
