package routes

import (
	"errors"

	"bonded-wms/config"
	"bonded-wms/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp builds the Fiber application with every route registered.
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "bonded-wms",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	config.SetupCORS(app)

	SetupRoutes(app, db)
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	SetupDashboardRoutes(app, db)
	SetupSupplierRoutes(app, db)
	SetupCategoryRoutes(app, db)
	SetupUomRoutes(app, db)
	SetupWarehouseRoutes(app, db)
	SetupProductRoutes(app, db)
	SetupStockRoutes(app, db)
	SetupMovementRoutes(app, db)
	SetupCustomsRoutes(app, db)
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return ctx.Status(code).JSON(fiber.Map{"success": false, "error": message})
}
