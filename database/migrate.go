package database

import (
	"bonded-wms/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
