package controllers

import (
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupplierController struct {
	DB   *gorm.DB
	repo *repositories.SupplierRepository
}

type supplierInput struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   *string `json:"email" validate:"omitempty,email,max=254"`
	Phone   string  `json:"phone" validate:"max=50"`
	Address string  `json:"address"`
}

func (in supplierInput) apply(s *models.Supplier) {
	s.Name = strings.TrimSpace(in.Name)
	s.Email = nil
	if in.Email != nil && strings.TrimSpace(*in.Email) != "" {
		email := strings.TrimSpace(*in.Email)
		s.Email = &email
	}
	s.Phone = in.Phone
	s.Address = in.Address
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db, repo: repositories.NewSupplierRepository(db)}
}

func (c *SupplierController) CreateSupplier(ctx *fiber.Ctx) error {
	var input supplierInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	var supplier models.Supplier
	input.apply(&supplier)
	if err := c.repo.Create(&supplier); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Supplier created successfully", "data": supplier})
}

func (c *SupplierController) GetAllSuppliers(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	suppliers, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Suppliers found", "data": suppliers})
}

func (c *SupplierController) GetSupplierByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	supplier, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier found", "data": supplier})
}

func (c *SupplierController) UpdateSupplier(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input supplierInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	supplier, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	input.apply(supplier)
	if err := c.repo.Update(supplier); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier updated successfully", "data": supplier})
}

// DeleteSupplier clears the supplier from its products and refuses while
// import declarations still name it.
func (c *SupplierController) DeleteSupplier(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier deleted successfully"})
}
