package controllers

import (
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"
	"bonded-wms/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BondLicenseController struct {
	DB   *gorm.DB
	repo *repositories.BondLicenseRepository
}

type bondLicenseInput struct {
	LicenseNumber string     `json:"license_number" validate:"required,max=64"`
	IssueDate     types.Date `json:"issue_date" validate:"required"`
	ExpiryDate    types.Date `json:"expiry_date" validate:"required"`
	WarehouseID   uint       `json:"warehouse_id" validate:"required"`
}

func (in bondLicenseInput) apply(b *models.BondLicense) {
	b.LicenseNumber = strings.TrimSpace(in.LicenseNumber)
	b.IssueDate = in.IssueDate
	b.ExpiryDate = in.ExpiryDate
	b.WarehouseID = in.WarehouseID
}

func NewBondLicenseController(db *gorm.DB) *BondLicenseController {
	return &BondLicenseController{DB: db, repo: repositories.NewBondLicenseRepository(db)}
}

func (c *BondLicenseController) CreateBondLicense(ctx *fiber.Ctx) error {
	var input bondLicenseInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}
	if input.ExpiryDate.Before(input.IssueDate.Time) {
		return badRequest(ctx, "expiry_date must not be before issue_date")
	}

	var license models.BondLicense
	input.apply(&license)
	if err := c.repo.Create(&license); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Bond license created successfully", "data": license})
}

func (c *BondLicenseController) GetAllBondLicenses(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, idFilter("warehouse_id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	licenses, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bond licenses found", "data": licenses})
}

func (c *BondLicenseController) GetBondLicenseByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	license, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bond license found", "data": license})
}

func (c *BondLicenseController) UpdateBondLicense(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input bondLicenseInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}
	if input.ExpiryDate.Before(input.IssueDate.Time) {
		return badRequest(ctx, "expiry_date must not be before issue_date")
	}

	license, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	input.apply(license)
	if err := c.repo.Update(license); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bond license updated successfully", "data": license})
}

// DeleteBondLicense is refused while declarations are filed under the
// license.
func (c *BondLicenseController) DeleteBondLicense(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bond license deleted successfully"})
}
