package models

type Supplier struct {
	Base
	Name    string  `json:"name" gorm:"size:255;not null"`
	Email   *string `json:"email" gorm:"size:254"`
	Phone   string  `json:"phone" gorm:"size:50"`
	Address string  `json:"address" gorm:"type:text"`
}

func (Supplier) TableName() string { return "suppliers" }

type Category struct {
	Base
	Name        string `json:"name" gorm:"size:120;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
}

func (Category) TableName() string { return "categories" }

type Warehouse struct {
	Base
	Name     string `json:"name" gorm:"size:120;not null"`
	Location string `json:"location" gorm:"size:255"`
}

func (Warehouse) TableName() string { return "warehouses" }
