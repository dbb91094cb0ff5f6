package controllers

import (
	"bonded-wms/models"
	"bonded-wms/repositories"
	"bonded-wms/types"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IOCOController struct {
	DB   *gorm.DB
	repo *repositories.IOCORepository
}

type iocoInput struct {
	ProductID      uint             `json:"product_id" validate:"required"`
	HSCodeID       uint             `json:"hs_code_id" validate:"required"`
	InputQuantity  *decimal.Decimal `json:"input_quantity" validate:"required,nonnegative,digits=12_4"`
	OutputQuantity *decimal.Decimal `json:"output_quantity" validate:"required,nonnegative,digits=12_4"`
	EffectiveDate  types.Date       `json:"effective_date" validate:"required"`
}

func (in iocoInput) apply(i *models.IOCO) {
	i.ProductID = in.ProductID
	i.HSCodeID = in.HSCodeID
	i.InputQuantity = in.InputQuantity.Round(4)
	i.OutputQuantity = in.OutputQuantity.Round(4)
	i.EffectiveDate = in.EffectiveDate
}

func NewIOCOController(db *gorm.DB) *IOCOController {
	return &IOCOController{DB: db, repo: repositories.NewIOCORepository(db)}
}

func (c *IOCOController) CreateIOCO(ctx *fiber.Ctx) error {
	var input iocoInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	var ioco models.IOCO
	input.apply(&ioco)
	if err := c.repo.Create(&ioco); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "IOCO created successfully", "data": ioco})
}

func (c *IOCOController) GetAllIOCO(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, idFilter("hs_code_id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "IOCO entries found", "data": entries})
}

func (c *IOCOController) GetIOCOByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	ioco, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "IOCO found", "data": ioco})
}

func (c *IOCOController) UpdateIOCO(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input iocoInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	ioco, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	input.apply(ioco)
	if err := c.repo.Update(ioco); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "IOCO updated successfully", "data": ioco})
}

func (c *IOCOController) DeleteIOCO(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "IOCO deleted successfully"})
}
