package controllers

import (
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB   *gorm.DB
	repo *repositories.CategoryRepository
}

type categoryInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, repo: repositories.NewCategoryRepository(db)}
}

func (c *CategoryController) CreateCategory(ctx *fiber.Ctx) error {
	var input categoryInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	category := models.Category{Name: strings.TrimSpace(input.Name), Description: input.Description}
	if err := c.repo.Create(&category); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Category created successfully", "data": category})
}

func (c *CategoryController) GetAllCategories(ctx *fiber.Ctx) error {
	params, err := listParams(ctx, 0)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	categories, err := c.repo.List(params)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Categories found", "data": categories})
}

func (c *CategoryController) GetCategoryByID(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	category, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category found", "data": category})
}

func (c *CategoryController) UpdateCategory(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var input categoryInput
	if err := parseBody(ctx, &input); err != nil {
		return badRequest(ctx, err.Error())
	}

	category, err := c.repo.Get(id)
	if err != nil {
		return respondError(ctx, err)
	}
	category.Name = strings.TrimSpace(input.Name)
	category.Description = input.Description
	if err := c.repo.Update(category); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category updated successfully", "data": category})
}

func (c *CategoryController) DeleteCategory(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.repo.Delete(id); err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category deleted successfully"})
}
