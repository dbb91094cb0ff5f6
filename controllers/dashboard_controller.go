package controllers

import (
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	productPageLimit  = 200
	stockPageLimit    = 500
	movementPageLimit = 200
)

type DashboardController struct {
	DB        *gorm.DB
	dashboard *repositories.DashboardRepository
	products  *repositories.ProductRepository
	stock     *repositories.StockRepository
	movements *repositories.MovementRepository
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:        db,
		dashboard: repositories.NewDashboardRepository(db),
		products:  repositories.NewProductRepository(db),
		stock:     repositories.NewStockRepository(db),
		movements: repositories.NewMovementRepository(db),
	}
}

func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	stats, err := c.dashboard.Stats()
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Dashboard found", "data": stats})
}

func (c *DashboardController) GetProductsPage(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, productPageLimit, productFilters...)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	products, err := c.products.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Products found", "data": productViews(products)})
}

func (c *DashboardController) GetStockPage(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, stockPageLimit, stockFilters...)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stocks, err := c.stock.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock found", "data": stockViews(stocks)})
}

// GetMovementsPage lists the most recent movements, newest first.
func (c *DashboardController) GetMovementsPage(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, movementPageLimit, movementFilters...)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	movements, err := c.movements.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stock movements found", "data": movementViews(movements)})
}
