package models

import "time"

// Base carries the surrogate key and the timestamps every master-data
// table has.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&Supplier{},
		&Category{},
		&UOM{},
		&HSCode{},
		&Warehouse{},
		&Product{},
		&BondLicense{},
		&ImportDeclaration{},
		&ExportDeclaration{},
		&IOCO{},
		&Stock{},
		&StockMovement{},
	}
}
