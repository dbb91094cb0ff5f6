package routes

import (
	"bonded-wms/config"
	"bonded-wms/controllers"
	"bonded-wms/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB) {
	stockController := controllers.NewStockController(db)

	api := app.Group(config.MAIN_ROUTES+"/stock", middleware.AuthMiddleware)
	api.Get("/export", stockController.ExportStock)
	api.Get("/lookup", stockController.GetStockByPair)
	api.Get("/", stockController.GetAllStock)
	api.Get("/:id", stockController.GetStockByID)
}

func SetupMovementRoutes(app *fiber.App, db *gorm.DB) {
	movementController := controllers.NewMovementController(db)

	api := app.Group(config.MAIN_ROUTES+"/movements", middleware.AuthMiddleware)
	api.Post("/adjust", movementController.AdjustStock)
	api.Get("/export", movementController.ExportMovements)
	api.Post("/", movementController.CreateMovement)
	api.Get("/", movementController.GetAllMovements)
	api.Get("/:id", movementController.GetMovementByID)
	api.Put("/:id", movementController.UpdateMovement)
	api.Delete("/:id", movementController.DeleteMovement)
}
