package models

import "github.com/shopspring/decimal"

type Product struct {
	Base
	SKU             string              `json:"sku" gorm:"column:sku;size:64;not null;uniqueIndex"`
	Name            string              `json:"name" gorm:"size:255;not null"`
	CategoryID      uint                `json:"category_id" gorm:"column:category_id;not null;index"`
	Category        *Category           `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	SupplierID      *uint               `json:"supplier_id" gorm:"column:supplier_id;index"`
	Supplier        *Supplier           `json:"-" gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
	Description     string              `json:"description" gorm:"type:text"`
	UnitPrice       decimal.Decimal     `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	IsActive        bool                `json:"is_active" gorm:"not null"`
	HSCodeID        *uint               `json:"hs_code_id" gorm:"column:hs_code_id;index"`
	HSCode          *HSCode             `json:"-" gorm:"foreignKey:HSCodeID;constraint:OnDelete:RESTRICT"`
	UOMID           *uint               `json:"uom_id" gorm:"column:uom_id;index"`
	UOM             *UOM                `json:"-" gorm:"foreignKey:UOMID;constraint:OnDelete:SET NULL"`
	CountryOfOrigin string              `json:"country_of_origin" gorm:"size:64"`
	CustomsValue    decimal.NullDecimal `json:"customs_value" gorm:"type:decimal(14,2)"`
}

func (Product) TableName() string { return "products" }

// ProductView is the product as the API returns it, with the names of the
// referenced rows resolved.
type ProductView struct {
	Product
	CategoryName string  `json:"category_name"`
	SupplierName *string `json:"supplier_name"`
	HSCodeCode   *string `json:"hs_code_code"`
	UOMCode      *string `json:"uom_code"`
}

func NewProductView(p Product) ProductView {
	view := ProductView{Product: p}
	if p.Category != nil {
		view.CategoryName = p.Category.Name
	}
	if p.Supplier != nil {
		view.SupplierName = &p.Supplier.Name
	}
	if p.HSCode != nil {
		view.HSCodeCode = &p.HSCode.Code
	}
	if p.UOM != nil {
		view.UOMCode = &p.UOM.Code
	}
	return view
}
