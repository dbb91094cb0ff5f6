package controllers

import (
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UomController struct {
	DB   *gorm.DB
	repo *repositories.UOMRepository
}

type uomInput struct {
	Code        string `json:"code" validate:"required,max=16"`
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=255"`
}

func (in uomInput) apply(u *models.UOM) {
	u.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	u.Name = strings.TrimSpace(in.Name)
	u.Description = in.Description
}

func NewUomController(db *gorm.DB) *UomController {
	return &UomController{DB: db, repo: repositories.NewUOMRepository(db)}
}

func (c *UomController) CreateUom(ctx *fiber.Ctx) error {
	var input uomInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	var uom models.UOM
	input.apply(&uom)
	if err := c.repo.Create(&uom); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "UOM created successfully", "data": uom})
}

func (c *UomController) GetAllUoms(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	uoms, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "UOMs found", "data": uoms})
}

func (c *UomController) GetUomByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	uom, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "UOM found", "data": uom})
}

func (c *UomController) UpdateUom(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input uomInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	uom, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	input.apply(uom)
	if err := c.repo.Update(uom); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "UOM updated successfully", "data": uom})
}

func (c *UomController) DeleteUom(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "UOM deleted successfully"})
}
