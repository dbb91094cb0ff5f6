package repositories

import (
	"bonded-wms/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	Products   int64 `json:"products"`
	Warehouses int64 `json:"warehouses"`
	StockItems int64 `json:"stock_items"`
	Movements  int64 `json:"movements"`
}

type DashboardRepository struct {
	DB *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

func (r *DashboardRepository) Stats() (DashboardStats, error) {
	var stats DashboardStats
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Product{}, &stats.Products},
		{&models.Warehouse{}, &stats.Warehouses},
		{&models.Stock{}, &stats.StockItems},
		{&models.StockMovement{}, &stats.Movements},
	}
	for _, c := range counts {
		if err := r.DB.Model(c.model).Count(c.dest).Error; err != nil {
			return DashboardStats{}, err
		}
	}
	return stats, nil
}
