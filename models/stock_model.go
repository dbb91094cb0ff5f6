package models

// Stock is the on-hand quantity of one product in one warehouse. Rows are
// only written by the stock ledger.
type Stock struct {
	Base
	ProductID   uint       `json:"product_id" gorm:"column:product_id;not null;uniqueIndex:idx_stock_product_warehouse"`
	Product     *Product   `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	WarehouseID uint       `json:"warehouse_id" gorm:"column:warehouse_id;not null;uniqueIndex:idx_stock_product_warehouse"`
	Warehouse   *Warehouse `json:"-" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
	Quantity    int        `json:"quantity" gorm:"not null;default:0"`
}

func (Stock) TableName() string { return "stocks" }

type StockView struct {
	Stock
	ProductName   string `json:"product_name"`
	WarehouseName string `json:"warehouse_name"`
}

func NewStockView(s Stock) StockView {
	view := StockView{Stock: s}
	if s.Product != nil {
		view.ProductName = s.Product.Name
	}
	if s.Warehouse != nil {
		view.WarehouseName = s.Warehouse.Name
	}
	return view
}
