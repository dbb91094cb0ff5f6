package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bonded-wms/idgen"
	"bonded-wms/types"

	"gorm.io/gorm"
)

type MovementType string

const (
	MovementInbound  MovementType = "IN"
	MovementOutbound MovementType = "OUT"
)

func (t MovementType) IsValid() bool {
	switch t {
	case MovementInbound, MovementOutbound:
		return true
	}
	return false
}

// Sign is +1 for inbound and -1 for outbound movements.
func (t MovementType) Sign() int {
	switch t {
	case MovementInbound:
		return 1
	case MovementOutbound:
		return -1
	}
	panic(fmt.Sprintf("unknown movement type %q", string(t)))
}

func (t MovementType) Label() string {
	switch t {
	case MovementInbound:
		return "Inbound"
	case MovementOutbound:
		return "Outbound"
	}
	return string(t)
}

// UnmarshalJSON also accepts the long spellings INBOUND and OUTBOUND.
func (t *MovementType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("movement_type must be a string: %w", err)
	}
	*t = ParseMovementType(raw)
	return nil
}

func ParseMovementType(raw string) MovementType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "IN", "INBOUND":
		return MovementInbound
	case "OUT", "OUTBOUND":
		return MovementOutbound
	}
	return MovementType(raw)
}

type MovementReason string

const (
	ReasonBondedReceipt   MovementReason = "BONDED_RECEIPT"
	ReasonProductionIssue MovementReason = "PRODUCTION_ISSUE"
	ReasonExportDispatch  MovementReason = "EXPORT_DISPATCH"
	ReasonWastage         MovementReason = "WASTAGE"
	ReasonAdjustment      MovementReason = "ADJUSTMENT"
)

func (r MovementReason) IsValid() bool {
	switch r {
	case ReasonBondedReceipt, ReasonProductionIssue, ReasonExportDispatch, ReasonWastage, ReasonAdjustment:
		return true
	}
	return false
}

func (r MovementReason) Label() string {
	switch r {
	case ReasonBondedReceipt:
		return "Bonded Receipt (Ex-bond)"
	case ReasonProductionIssue:
		return "Issue to Production"
	case ReasonExportDispatch:
		return "Export Dispatch"
	case ReasonWastage:
		return "Wastage/Destruction"
	case ReasonAdjustment:
		return "Adjustment"
	}
	return string(r)
}

// StockMovement is a ledger entry. ProductID, WarehouseID, MovementType
// and Quantity never change after insert; deleting the row does not undo
// its effect on Stock.
type StockMovement struct {
	ID                  types.SnowflakeID  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ProductID           uint               `json:"product_id" gorm:"column:product_id;not null;index"`
	Product             *Product           `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	WarehouseID         uint               `json:"warehouse_id" gorm:"column:warehouse_id;not null;index"`
	Warehouse           *Warehouse         `json:"-" gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
	MovementType        MovementType       `json:"movement_type" gorm:"size:3;not null"`
	Quantity            int                `json:"quantity" gorm:"not null"`
	Reason              MovementReason     `json:"reason" gorm:"size:32;not null"`
	Reference           string             `json:"reference" gorm:"size:255"`
	DocumentNumber      string             `json:"document_number" gorm:"size:64"`
	DocumentDate        *types.Date        `json:"document_date"`
	ImportDeclarationID *uint              `json:"import_declaration_id" gorm:"column:import_declaration_id;index"`
	ImportDeclaration   *ImportDeclaration `json:"-" gorm:"foreignKey:ImportDeclarationID;constraint:OnDelete:SET NULL"`
	ExportDeclarationID *uint              `json:"export_declaration_id" gorm:"column:export_declaration_id;index"`
	ExportDeclaration   *ExportDeclaration `json:"-" gorm:"foreignKey:ExportDeclarationID;constraint:OnDelete:SET NULL"`
	Remarks             string             `json:"remarks" gorm:"type:text"`
	AppliedAt           *time.Time         `json:"applied_at"`
	CreatedAt           time.Time          `json:"created_at" gorm:"index"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func (StockMovement) TableName() string { return "stock_movements" }

func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == 0 {
		m.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}

// Delta is the signed change this movement makes to the on-hand quantity.
func (m StockMovement) Delta() int {
	return m.MovementType.Sign() * m.Quantity
}

type StockMovementView struct {
	StockMovement
	ProductSKU    string `json:"product_sku"`
	ProductName   string `json:"product_name"`
	WarehouseName string `json:"warehouse_name"`
}

func NewStockMovementView(m StockMovement) StockMovementView {
	view := StockMovementView{StockMovement: m}
	if m.Product != nil {
		view.ProductSKU = m.Product.SKU
		view.ProductName = m.Product.Name
	}
	if m.Warehouse != nil {
		view.WarehouseName = m.Warehouse.Name
	}
	return view
}
