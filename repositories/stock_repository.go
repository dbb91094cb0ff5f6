package repositories

import (
	"errors"
	"fmt"

	"bonded-wms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockRepository struct {
	crudRepository[models.Stock]
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{crudRepository[models.Stock]{
		DB:       db,
		label:    "stock",
		order:    "id",
		preloads: []string{"Product", "Warehouse"},
	}}
}

// FindByPair returns the stock row for a product in a warehouse, or
// ErrNotFound if no movement has touched the pair yet.
func (r *StockRepository) FindByPair(productID, warehouseID uint) (*models.Stock, error) {
	var stock models.Stock
	err := r.DB.Preload("Product").Preload("Warehouse").
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("stock", fmt.Sprintf("product %d @ warehouse %d", productID, warehouseID))
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// ApplyDelta adds delta to the pair's quantity inside tx. A missing row is
// inserted at zero first; the change itself is a single
// quantity = quantity + delta statement so concurrent writers never lose an
// update.
func (r *StockRepository) ApplyDelta(tx *gorm.DB, productID, warehouseID uint, delta int) (*models.Stock, error) {
	seed := models.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: 0}
	err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "warehouse_id"}},
		DoNothing: true,
	}).Create(&seed).Error
	if err != nil {
		return nil, translateWrite(fmt.Errorf("upsert stock row: %w", err))
	}

	res := tx.Model(&models.Stock{}).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": tx.NowFunc(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("apply stock delta: %w", res.Error)
	}
	if res.RowsAffected != 1 {
		return nil, fmt.Errorf("apply stock delta: expected 1 row, updated %d", res.RowsAffected)
	}

	var stock models.Stock
	if err := tx.Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).First(&stock).Error; err != nil {
		return nil, fmt.Errorf("reload stock row: %w", err)
	}
	return &stock, nil
}
