package database_test

import (
	"testing"

	"bonded-wms/database"
	"bonded-wms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedersIsIdempotent(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, database.RunSeeders(db))
	require.NoError(t, database.RunSeeders(db))

	counts := map[interface{}]int64{
		&models.UOM{}:           3,
		&models.Supplier{}:      1,
		&models.Category{}:      1,
		&models.Warehouse{}:     1,
		&models.Product{}:       3,
		&models.StockMovement{}: 3,
		&models.Stock{}:         3,
	}
	for model, want := range counts {
		var got int64
		require.NoError(t, db.Model(model).Count(&got).Error)
		assert.Equal(t, want, got, "%T", model)
	}

	var stock []models.Stock
	require.NoError(t, db.Find(&stock).Error)
	for _, s := range stock {
		assert.Equal(t, 100, s.Quantity)
	}

	var movement models.StockMovement
	require.NoError(t, db.First(&movement).Error)
	assert.Equal(t, models.MovementInbound, movement.MovementType)
	assert.Equal(t, models.ReasonAdjustment, movement.Reason)
	assert.NotNil(t, movement.AppliedAt)
}
