package routes

import (
	"bonded-wms/config"
	"bonded-wms/controllers"
	"bonded-wms/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controllers.NewDashboardController(db)

	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)
	api.Get("/", dashboardController.GetDashboard)

	pages := app.Group(config.MAIN_ROUTES+"/pages", middleware.AuthMiddleware)
	pages.Get("/products", dashboardController.GetProductsPage)
	pages.Get("/stock", dashboardController.GetStockPage)
	pages.Get("/movements", dashboardController.GetMovementsPage)
}
