package services

import (
	"time"

	"bonded-wms/models"
	"bonded-wms/repositories"

	"gorm.io/gorm"
)

// ExpiringLicense is a bond license together with the days it has left.
type ExpiringLicense struct {
	License       models.BondLicense
	WarehouseName string
	DaysLeft      int
}

// ExpiringLicenses lists bond licenses that expire within days of now,
// including any that expire today.
func ExpiringLicenses(db *gorm.DB, now time.Time, days int) ([]ExpiringLicense, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	licenses, err := repositories.NewBondLicenseRepository(db).ExpiringBetween(today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	out := make([]ExpiringLicense, 0, len(licenses))
	for _, l := range licenses {
		item := ExpiringLicense{
			License:  l,
			DaysLeft: int(l.ExpiryDate.Sub(today).Hours() / 24),
		}
		if l.Warehouse != nil {
			item.WarehouseName = l.Warehouse.Name
		}
		out = append(out, item)
	}
	return out, nil
}
