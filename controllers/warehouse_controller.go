package controllers

import (
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WarehouseController struct {
	DB   *gorm.DB
	repo *repositories.WarehouseRepository
}

type warehouseInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Location string `json:"location" validate:"max=255"`
}

func NewWarehouseController(db *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: db, repo: repositories.NewWarehouseRepository(db)}
}

func (c *WarehouseController) CreateWarehouse(ctx *fiber.Ctx) error {
	var input warehouseInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	warehouse := models.Warehouse{Name: strings.TrimSpace(input.Name), Location: input.Location}
	if err := c.repo.Create(&warehouse); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Warehouse created successfully", "data": warehouse})
}

func (c *WarehouseController) GetAllWarehouses(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	warehouses, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Warehouses found", "data": warehouses})
}

func (c *WarehouseController) GetWarehouseByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	warehouse, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Warehouse found", "data": warehouse})
}

func (c *WarehouseController) UpdateWarehouse(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input warehouseInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	warehouse, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	warehouse.Name = strings.TrimSpace(input.Name)
	warehouse.Location = input.Location
	if err := c.repo.Update(warehouse); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Warehouse updated successfully", "data": warehouse})
}

// DeleteWarehouse removes the warehouse with its stock, movements and bond
// licenses.
func (c *WarehouseController) DeleteWarehouse(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Warehouse deleted successfully"})
}
