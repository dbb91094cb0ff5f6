package controllers

import (
	"bonded-wms/models"
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StockController is read-only: stock rows only change through movements.
type StockController struct {
	DB   *gorm.DB
	repo *repositories.StockRepository
}

var stockFilters = []queryFilter{idFilter("product_id"), idFilter("warehouse_id")}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{DB: db, repo: repositories.NewStockRepository(db)}
}

func (c *StockController) GetAllStock(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, stockFilters...)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stocks, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock found", "data": stockViews(stocks)})
}

func (c *StockController) GetStockByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stock, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock found", "data": models.NewStockView(*stock)})
}

// GetStockByPair answers "how many of this product are in this
// warehouse". A pair no movement has touched is a 404.
func (c *StockController) GetStockByPair(ctx *fiber.Ctx) error {
	var ids [2]uint
	for i, name := range []string{"product_id", "warehouse_id"} {
		raw := ctx.Query(name)
		if raw == "" {
			return badRequest(ctx, name+" is required")
		}
		value, err := idFilter(name).Parse(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		ids[i] = value.(uint)
	}

	stock, err := c.repo.FindByPair(ids[0], ids[1])
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock found", "data": models.NewStockView(*stock)})
}

func (c *StockController) ExportStock(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, stockFilters...)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stocks, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	header := []interface{}{"Warehouse", "SKU", "Product", "Quantity", "Updated At"}
	rows := make([][]interface{}, 0, len(stocks))
	for _, s := range stocks {
		view := models.NewStockView(s)
		sku := ""
		if s.Product != nil {
			sku = s.Product.SKU
		}
		rows = append(rows, []interface{}{view.WarehouseName, sku, view.ProductName, view.Quantity, view.UpdatedAt})
	}
	return sendXLSX(ctx, "stock.xlsx", header, rows)
}

func stockViews(stocks []models.Stock) []models.StockView {
	views := make([]models.StockView, len(stocks))
	for i, s := range stocks {
		views[i] = models.NewStockView(s)
	}
	return views
}
