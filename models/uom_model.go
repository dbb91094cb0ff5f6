package models

// UOM is a unit of measure such as PCS, BOX or CTN.
type UOM struct {
	Base
	Code        string `json:"code" gorm:"size:16;not null;uniqueIndex"`
	Name        string `json:"name" gorm:"size:64;not null"`
	Description string `json:"description" gorm:"size:255"`
}

func (UOM) TableName() string { return "uoms" }
