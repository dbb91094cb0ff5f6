package controllers

import (
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductController struct {
	DB   *gorm.DB
	repo *repositories.ProductRepository
}

type productInput struct {
	SKU             string              `json:"sku" validate:"required,max=64"`
	Name            string              `json:"name" validate:"required,max=255"`
	CategoryID      uint                `json:"category_id" validate:"required"`
	SupplierID      *uint               `json:"supplier_id"`
	Description     string              `json:"description"`
	UnitPrice       *decimal.Decimal    `json:"unit_price" validate:"required,nonnegative,digits=12_2"`
	IsActive        *bool               `json:"is_active"`
	HSCodeID        *uint               `json:"hs_code_id"`
	UOMID           *uint               `json:"uom_id"`
	CountryOfOrigin string              `json:"country_of_origin" validate:"max=64"`
	CustomsValue    decimal.NullDecimal `json:"customs_value" validate:"omitempty,nonnegative,digits=14_2"`
}

func (in productInput) apply(p *models.Product) {
	p.SKU = strings.TrimSpace(in.SKU)
	p.Name = strings.TrimSpace(in.Name)
	p.CategoryID = in.CategoryID
	p.SupplierID = in.SupplierID
	p.Description = in.Description
	p.UnitPrice = in.UnitPrice.Round(2)
	p.IsActive = in.IsActive == nil || *in.IsActive
	p.HSCodeID = in.HSCodeID
	p.UOMID = in.UOMID
	p.CountryOfOrigin = in.CountryOfOrigin
	p.CustomsValue = in.CustomsValue
}

var productFilters = []queryFilter{idFilter("category_id"), idFilter("supplier_id"), boolFilter("is_active")}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db, repo: repositories.NewProductRepository(db)}
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var input productInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	var product models.Product
	input.apply(&product)
	if err := c.repo.Create(&product); err != nil {
		return respondError(ctx, err)
	}

	return c.respondProduct(ctx, fiber.StatusCreated, "Product created successfully", product.ID)
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0, productFilters...)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	products, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Products found", "data": productViews(products)})
}

func (c *ProductController) GetProductByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return c.respondProduct(ctx, fiber.StatusOK, "Product found", id)
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input productInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	product, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	input.apply(product)
	if err := c.repo.Update(product); err != nil {
		return respondError(ctx, err)
	}

	return c.respondProduct(ctx, fiber.StatusOK, "Product updated successfully", id)
}

// DeleteProduct also removes the product's stock rows, movements and IOCO
// entries.
func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product deleted successfully"})
}

// respondProduct reloads the product so the response carries the resolved
// reference names.
func (c *ProductController) respondProduct(ctx *fiber.Ctx, status int, message string, id uint) error {
	product, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(status).JSON(fiber.Map{"success": true, "message": message, "data": models.NewProductView(*product)})
}

func productViews(products []models.Product) []models.ProductView {
	views := make([]models.ProductView, len(products))
	for i, p := range products {
		views[i] = models.NewProductView(p)
	}
	return views
}
