package controllers

import (
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HSCodeController struct {
	DB   *gorm.DB
	repo *repositories.HSCodeRepository
}

type hsCodeInput struct {
	Code        string `json:"code" validate:"required,max=10"`
	Description string `json:"description" validate:"required,max=255"`
}

func NewHSCodeController(db *gorm.DB) *HSCodeController {
	return &HSCodeController{DB: db, repo: repositories.NewHSCodeRepository(db)}
}

func (c *HSCodeController) CreateHSCode(ctx *fiber.Ctx) error {
	var input hsCodeInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	code := models.HSCode{Code: strings.TrimSpace(input.Code), Description: input.Description}
	if err := c.repo.Create(&code); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "HS code created successfully", "data": code})
}

func (c *HSCodeController) GetAllHSCodes(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	codes, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "HS codes found", "data": codes})
}

func (c *HSCodeController) GetHSCodeByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	code, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "HS code found", "data": code})
}

func (c *HSCodeController) UpdateHSCode(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input hsCodeInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	code, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	code.Code = strings.TrimSpace(input.Code)
	code.Description = input.Description
	if err := c.repo.Update(code); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "HS code updated successfully", "data": code})
}

func (c *HSCodeController) DeleteHSCode(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "HS code deleted successfully"})
}
