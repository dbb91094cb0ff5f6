package controllers

import (
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"
	"bonded-wms/types"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ImportDeclarationController struct {
	DB   *gorm.DB
	repo *repositories.ImportDeclarationRepository
}

type importDeclarationInput struct {
	BillOfEntryNo    string           `json:"bill_of_entry_no" validate:"required,max=64"`
	BillOfEntryDate  types.Date       `json:"bill_of_entry_date" validate:"required"`
	SupplierID       uint             `json:"supplier_id" validate:"required"`
	BondLicenseID    uint             `json:"bond_license_id" validate:"required"`
	HSCodeID         uint             `json:"hs_code_id" validate:"required"`
	UOM              string           `json:"uom" validate:"max=32"`
	DeclaredQuantity *decimal.Decimal `json:"declared_quantity" validate:"required,nonnegative,digits=14_4"`
	CustomsValue     *decimal.Decimal `json:"customs_value" validate:"required,nonnegative,digits=14_2"`
	CountryOfOrigin  string           `json:"country_of_origin" validate:"max=64"`
}

func (in importDeclarationInput) apply(d *models.ImportDeclaration) {
	d.BillOfEntryNo = strings.TrimSpace(in.BillOfEntryNo)
	d.BillOfEntryDate = in.BillOfEntryDate
	d.SupplierID = in.SupplierID
	d.BondLicenseID = in.BondLicenseID
	d.HSCodeID = in.HSCodeID
	d.UOM = strings.TrimSpace(in.UOM)
	if d.UOM == "" {
		d.UOM = "PCS"
	}
	d.DeclaredQuantity = in.DeclaredQuantity.Round(4)
	d.CustomsValue = in.CustomsValue.Round(2)
	d.CountryOfOrigin = in.CountryOfOrigin
}

func NewImportDeclarationController(db *gorm.DB) *ImportDeclarationController {
	return &ImportDeclarationController{DB: db, repo: repositories.NewImportDeclarationRepository(db)}
}

func (c *ImportDeclarationController) CreateImportDeclaration(ctx *fiber.Ctx) error {
	var input importDeclarationInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	var declaration models.ImportDeclaration
	input.apply(&declaration)
	if err := c.repo.Create(&declaration); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Import declaration created successfully", "data": declaration})
}

func (c *ImportDeclarationController) GetAllImportDeclarations(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, idFilter("hs_code_id"), idFilter("supplier_id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	declarations, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import declarations found", "data": declarations})
}

func (c *ImportDeclarationController) GetImportDeclarationByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	declaration, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import declaration found", "data": declaration})
}

func (c *ImportDeclarationController) UpdateImportDeclaration(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input importDeclarationInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	declaration, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	input.apply(declaration)
	if err := c.repo.Update(declaration); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import declaration updated successfully", "data": declaration})
}

func (c *ImportDeclarationController) DeleteImportDeclaration(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Import declaration deleted successfully"})
}

type ExportDeclarationController struct {
	DB   *gorm.DB
	repo *repositories.ExportDeclarationRepository
}

type exportDeclarationInput struct {
	ExportNumber       string     `json:"export_number" validate:"required,max=64"`
	ExportDate         types.Date `json:"export_date" validate:"required"`
	BondLicenseID      uint       `json:"bond_license_id" validate:"required"`
	DestinationCountry string     `json:"destination_country" validate:"required,max=64"`
}

func (in exportDeclarationInput) apply(d *models.ExportDeclaration) {
	d.ExportNumber = strings.TrimSpace(in.ExportNumber)
	d.ExportDate = in.ExportDate
	d.BondLicenseID = in.BondLicenseID
	d.DestinationCountry = in.DestinationCountry
}

func NewExportDeclarationController(db *gorm.DB) *ExportDeclarationController {
	return &ExportDeclarationController{DB: db, repo: repositories.NewExportDeclarationRepository(db)}
}

func (c *ExportDeclarationController) CreateExportDeclaration(ctx *fiber.Ctx) error {
	var input exportDeclarationInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	var declaration models.ExportDeclaration
	input.apply(&declaration)
	if err := c.repo.Create(&declaration); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Export declaration created successfully", "data": declaration})
}

func (c *ExportDeclarationController) GetAllExportDeclarations(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, idFilter("bond_license_id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	declarations, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Export declarations found", "data": declarations})
}

func (c *ExportDeclarationController) GetExportDeclarationByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	declaration, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Export declaration found", "data": declaration})
}

func (c *ExportDeclarationController) UpdateExportDeclaration(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input exportDeclarationInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	declaration, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	input.apply(declaration)
	if err := c.repo.Update(declaration); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Export declaration updated successfully", "data": declaration})
}

func (c *ExportDeclarationController) DeleteExportDeclaration(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Export declaration deleted successfully"})
}
