package services_test

import (
	"testing"
	"time"

	"bonded-wms/models"
	"bonded-wms/repositories"
	"bonded-wms/services"
	"bonded-wms/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiringLicenses(t *testing.T) {
	db := newTestDB(t)
	warehouse := models.Warehouse{Name: "Bonded Store 1"}
	require.NoError(t, repositories.NewWarehouseRepository(db).Create(&warehouse))

	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	licenses := repositories.NewBondLicenseRepository(db)
	for number, expiry := range map[string]types.Date{
		"BL-EXPIRED": types.NewDate(2026, time.March, 9),
		"BL-TODAY":   types.NewDate(2026, time.March, 10),
		"BL-SOON":    types.NewDate(2026, time.March, 25),
		"BL-EDGE":    types.NewDate(2026, time.April, 9),
		"BL-LATER":   types.NewDate(2026, time.April, 10),
	} {
		require.NoError(t, licenses.Create(&models.BondLicense{
			LicenseNumber: number,
			IssueDate:     types.NewDate(2025, time.January, 1),
			ExpiryDate:    expiry,
			WarehouseID:   warehouse.ID,
		}))
	}

	got, err := services.ExpiringLicenses(db, now, 30)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "BL-TODAY", got[0].License.LicenseNumber)
	assert.Equal(t, 0, got[0].DaysLeft)
	assert.Equal(t, "BL-SOON", got[1].License.LicenseNumber)
	assert.Equal(t, 15, got[1].DaysLeft)
	assert.Equal(t, "BL-EDGE", got[2].License.LicenseNumber)
	assert.Equal(t, 30, got[2].DaysLeft)
	assert.Equal(t, "Bonded Store 1", got[2].WarehouseName)
}
