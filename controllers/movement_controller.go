package controllers

import (
	"fmt"

	"bonded-wms/models"
	"bonded-wms/repositories"
	"bonded-wms/services"
	"bonded-wms/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MovementController struct {
	DB     *gorm.DB
	repo   *repositories.MovementRepository
	ledger *services.StockLedger
}

type movementInput struct {
	ProductID           uint                  `json:"product_id" validate:"required"`
	WarehouseID         uint                  `json:"warehouse_id" validate:"required"`
	MovementType        models.MovementType   `json:"movement_type" validate:"required,oneof=IN OUT"`
	Quantity            int                   `json:"quantity" validate:"required,gt=0,lte=2147483647"`
	Reason              models.MovementReason `json:"reason" validate:"omitempty,oneof=BONDED_RECEIPT PRODUCTION_ISSUE EXPORT_DISPATCH WASTAGE ADJUSTMENT"`
	Reference           string                `json:"reference" validate:"max=255"`
	DocumentNumber      string                `json:"document_number" validate:"max=64"`
	DocumentDate        *types.Date           `json:"document_date"`
	ImportDeclarationID *uint                 `json:"import_declaration_id"`
	ExportDeclarationID *uint                 `json:"export_declaration_id"`
	Remarks             string                `json:"remarks"`
}

func (in movementInput) toModel() *models.StockMovement {
	m := &models.StockMovement{
		ProductID:    in.ProductID,
		WarehouseID:  in.WarehouseID,
		MovementType: in.MovementType,
		Quantity:     in.Quantity,
		Reason:       in.Reason,
	}
	applyPaperwork(m, in.Reason, in.Reference, in.DocumentNumber, in.DocumentDate, in.ImportDeclarationID, in.ExportDeclarationID, in.Remarks)
	return m
}

// movementPaperworkInput is the body of a movement edit. The ledger fields
// may be echoed back but must match the stored movement.
type movementPaperworkInput struct {
	ProductID           *uint                 `json:"product_id"`
	WarehouseID         *uint                 `json:"warehouse_id"`
	MovementType        *models.MovementType  `json:"movement_type"`
	Quantity            *int                  `json:"quantity"`
	Reason              models.MovementReason `json:"reason" validate:"omitempty,oneof=BONDED_RECEIPT PRODUCTION_ISSUE EXPORT_DISPATCH WASTAGE ADJUSTMENT"`
	Reference           string                `json:"reference" validate:"max=255"`
	DocumentNumber      string                `json:"document_number" validate:"max=64"`
	DocumentDate        *types.Date           `json:"document_date"`
	ImportDeclarationID *uint                 `json:"import_declaration_id"`
	ExportDeclarationID *uint                 `json:"export_declaration_id"`
	Remarks             string                `json:"remarks"`
}

func (in movementPaperworkInput) checkLedgerFields(m *models.StockMovement) error {
	switch {
	case in.ProductID != nil && *in.ProductID != m.ProductID:
		return fmt.Errorf("%w: product_id cannot change", repositories.ErrImmutable)
	case in.WarehouseID != nil && *in.WarehouseID != m.WarehouseID:
		return fmt.Errorf("%w: warehouse_id cannot change", repositories.ErrImmutable)
	case in.MovementType != nil && *in.MovementType != m.MovementType:
		return fmt.Errorf("%w: movement_type cannot change", repositories.ErrImmutable)
	case in.Quantity != nil && *in.Quantity != m.Quantity:
		return fmt.Errorf("%w: quantity cannot change", repositories.ErrImmutable)
	}
	return nil
}

func applyPaperwork(m *models.StockMovement, reason models.MovementReason, reference, documentNumber string,
	documentDate *types.Date, importID, exportID *uint, remarks string) {
	if reason != "" {
		m.Reason = reason
	}
	m.Reference = reference
	m.DocumentNumber = documentNumber
	m.DocumentDate = documentDate
	m.ImportDeclarationID = importID
	m.ExportDeclarationID = exportID
	m.Remarks = remarks
}

var movementFilters = []queryFilter{movementTypeFilter, reasonFilter, idFilter("product_id"), idFilter("warehouse_id")}

func NewMovementController(db *gorm.DB) *MovementController {
	return &MovementController{
		DB:     db,
		repo:   repositories.NewMovementRepository(db),
		ledger: services.NewStockLedger(db),
	}
}

// CreateMovement records the movement and applies it to stock.
func (c *MovementController) CreateMovement(ctx *fiber.Ctx) error {
	return c.record(ctx, "Stock movement created successfully")
}

// AdjustStock is the explicit adjustment endpoint. It has exactly the
// stock effect of CreateMovement.
func (c *MovementController) AdjustStock(ctx *fiber.Ctx) error {
	return c.record(ctx, "Stock adjusted successfully")
}

func (c *MovementController) record(ctx *fiber.Ctx, message string) error {
	var input movementInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	movement := input.toModel()
	if _, err := c.ledger.Record(movement); err != nil {
		return respondError(ctx, err)
	}

	return c.respondMovement(ctx, fiber.StatusCreated, message, movement.ID)
}

func (c *MovementController) GetAllMovements(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, movementFilters...)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	movements, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock movements found", "data": movementViews(movements)})
}

func (c *MovementController) GetMovementByID(ctx *fiber.Ctx) error {
	id, err := types.ParseSnowflakeID(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ID")
	}
	return c.respondMovement(ctx, fiber.StatusOK, "Stock movement found", id)
}

// UpdateMovement edits the paperwork of a movement. Stock is never touched.
func (c *MovementController) UpdateMovement(ctx *fiber.Ctx) error {
	id, err := types.ParseSnowflakeID(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ID")
	}

	var input movementPaperworkInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	movement, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := input.checkLedgerFields(movement); err != nil {
		return respondError(ctx, err)
	}
	applyPaperwork(movement, input.Reason, input.Reference, input.DocumentNumber, input.DocumentDate,
		input.ImportDeclarationID, input.ExportDeclarationID, input.Remarks)
	if err := c.repo.UpdatePaperwork(movement); err != nil {
		return respondError(ctx, err)
	}

	return c.respondMovement(ctx, fiber.StatusOK, "Stock movement updated successfully", id)
}

// DeleteMovement removes the movement record only. The stock it was
// applied to keeps its quantity.
func (c *MovementController) DeleteMovement(ctx *fiber.Ctx) error {
	id, err := types.ParseSnowflakeID(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid ID")
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock movement deleted successfully"})
}

func (c *MovementController) ExportMovements(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, movementFilters...)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	movements, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	header := []interface{}{"ID", "Date", "Warehouse", "SKU", "Product", "Type", "Quantity", "Reason", "Reference", "Document No", "Document Date", "Remarks"}
	rows := make([][]interface{}, 0, len(movements))
	for _, m := range movements {
		view := models.NewStockMovementView(m)
		documentDate := ""
		if m.DocumentDate != nil {
			documentDate = m.DocumentDate.String()
		}
		rows = append(rows, []interface{}{
			m.ID.String(), m.CreatedAt, view.WarehouseName, view.ProductSKU, view.ProductName,
			m.MovementType.Label(), m.Quantity, m.Reason.Label(), m.Reference, m.DocumentNumber, documentDate, m.Remarks,
		})
	}
	return sendXLSX(ctx, "stock_movements.xlsx", header, rows)
}

func (c *MovementController) respondMovement(ctx *fiber.Ctx, status int, message string, id types.SnowflakeID) error {
	movement, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(status).JSON(fiber.Map{"success": true, "message": message, "data": models.NewStockMovementView(*movement)})
}

func movementViews(movements []models.StockMovement) []models.StockMovementView {
	views := make([]models.StockMovementView, len(movements))
	for i, m := range movements {
		views[i] = models.NewStockMovementView(m)
	}
	return views
}
