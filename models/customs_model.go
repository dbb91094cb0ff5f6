package models

import (
	"bonded-wms/types"

	"github.com/shopspring/decimal"
)

// HSCode is a Harmonized System classification code.
type HSCode struct {
	Base
	Code        string `json:"code" gorm:"size:10;not null;uniqueIndex"`
	Description string `json:"description" gorm:"size:255;not null"`
}

func (HSCode) TableName() string { return "hs_codes" }

type BondLicense struct {
	Base
	LicenseNumber string     `json:"license_number" gorm:"size:64;not null;uniqueIndex"`
	IssueDate     types.Date `json:"issue_date" gorm:"not null"`
	ExpiryDate    types.Date `json:"expiry_date" gorm:"not null;index"`
	WarehouseID   uint       `json:"warehouse_id" gorm:"column:warehouse_id;not null;index"`
	Warehouse     *Warehouse `json:"-" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

func (BondLicense) TableName() string { return "bond_licenses" }

// ImportDeclaration is the bill of entry filed when bonded goods arrive.
type ImportDeclaration struct {
	Base
	BillOfEntryNo    string          `json:"bill_of_entry_no" gorm:"size:64;not null;uniqueIndex"`
	BillOfEntryDate  types.Date      `json:"bill_of_entry_date" gorm:"not null"`
	SupplierID       uint            `json:"supplier_id" gorm:"column:supplier_id;not null;index"`
	Supplier         *Supplier       `json:"-" gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT"`
	BondLicenseID    uint            `json:"bond_license_id" gorm:"column:bond_license_id;not null;index"`
	BondLicense      *BondLicense    `json:"-" gorm:"foreignKey:BondLicenseID;constraint:OnDelete:RESTRICT"`
	HSCodeID         uint            `json:"hs_code_id" gorm:"column:hs_code_id;not null;index"`
	HSCode           *HSCode         `json:"-" gorm:"foreignKey:HSCodeID;constraint:OnDelete:RESTRICT"`
	UOM              string          `json:"uom" gorm:"column:uom;size:32;not null"`
	DeclaredQuantity decimal.Decimal `json:"declared_quantity" gorm:"type:decimal(14,4);not null"`
	CustomsValue     decimal.Decimal `json:"customs_value" gorm:"type:decimal(14,2);not null"`
	CountryOfOrigin  string          `json:"country_of_origin" gorm:"size:64"`
}

func (ImportDeclaration) TableName() string { return "import_declarations" }

type ExportDeclaration struct {
	Base
	ExportNumber       string       `json:"export_number" gorm:"size:64;not null;uniqueIndex"`
	ExportDate         types.Date   `json:"export_date" gorm:"not null"`
	BondLicenseID      uint         `json:"bond_license_id" gorm:"column:bond_license_id;not null;index"`
	BondLicense        *BondLicense `json:"-" gorm:"foreignKey:BondLicenseID;constraint:OnDelete:RESTRICT"`
	DestinationCountry string       `json:"destination_country" gorm:"size:64;not null"`
}

func (ExportDeclaration) TableName() string { return "export_declarations" }

// IOCO is an input-output coefficient: how much raw input is consumed per
// unit of finished output under bonded manufacturing.
type IOCO struct {
	Base
	ProductID      uint            `json:"product_id" gorm:"column:product_id;not null;index"`
	Product        *Product        `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	HSCodeID       uint            `json:"hs_code_id" gorm:"column:hs_code_id;not null;index"`
	HSCode         *HSCode         `json:"-" gorm:"foreignKey:HSCodeID;constraint:OnDelete:RESTRICT"`
	InputQuantity  decimal.Decimal `json:"input_quantity" gorm:"type:decimal(12,4);not null"`
	OutputQuantity decimal.Decimal `json:"output_quantity" gorm:"type:decimal(12,4);not null"`
	EffectiveDate  types.Date      `json:"effective_date" gorm:"not null"`
}

func (IOCO) TableName() string { return "ioco" }
