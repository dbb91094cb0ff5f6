package database

import (
	"errors"
	"fmt"

	"bonded-wms/logger"
	"bonded-wms/models"
	"bonded-wms/services"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RunSeeders loads the units of measure and the demo data set. Running it
// again changes nothing.
func RunSeeders(db *gorm.DB) error {
	if err := SeedUoms(db); err != nil {
		return fmt.Errorf("seed uoms: %w", err)
	}
	if err := SeedInventory(db); err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}
	return nil
}

func SeedUoms(db *gorm.DB) error {
	uoms := []models.UOM{
		{Code: "PCS", Name: "Pieces"},
		{Code: "BOX", Name: "Box"},
		{Code: "CTN", Name: "Carton"},
	}

	for _, u := range uoms {
		var existing models.UOM
		err := db.Where("code = ?", u.Code).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&u).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type seedProduct struct {
	SKU   string
	Name  string
	Price string
}

var demoProducts = []seedProduct{
	{"SKU-001", "Item A", "10.00"},
	{"SKU-002", "Item B", "25.50"},
	{"SKU-003", "Item C", "5.75"},
}

const initialStock = 100

// SeedInventory creates the default supplier, category and warehouse and
// three products. Each new product receives an applied inbound movement of
// 100 units; products that already exist are left alone.
func SeedInventory(db *gorm.DB) error {
	var supplier models.Supplier
	if err := db.Where(models.Supplier{Name: "Default Supplier"}).FirstOrCreate(&supplier).Error; err != nil {
		return err
	}
	var category models.Category
	if err := db.Where(models.Category{Name: "General"}).FirstOrCreate(&category).Error; err != nil {
		return err
	}
	var warehouse models.Warehouse
	if err := db.Where(models.Warehouse{Name: "Main Warehouse", Location: "HQ"}).FirstOrCreate(&warehouse).Error; err != nil {
		return err
	}

	for _, p := range demoProducts {
		var existing models.Product
		err := db.Where("sku = ?", p.SKU).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			product := models.Product{
				SKU:        p.SKU,
				Name:       p.Name,
				CategoryID: category.ID,
				SupplierID: &supplier.ID,
				UnitPrice:  decimal.RequireFromString(p.Price),
				IsActive:   true,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}

			movement := models.StockMovement{
				ProductID:    product.ID,
				WarehouseID:  warehouse.ID,
				MovementType: models.MovementInbound,
				Quantity:     initialStock,
				Reason:       models.ReasonAdjustment,
				Reference:    "Initial stock",
			}
			_, err := services.NewStockLedger(tx).Record(&movement)
			return err
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", p.SKU, err)
		}
		logger.L().Info("Seeded product", zap.String("sku", p.SKU), zap.Int("quantity", initialStock))
	}
	return nil
}
