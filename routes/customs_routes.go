package routes

import (
	"bonded-wms/config"
	"bonded-wms/controllers"
	"bonded-wms/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomsRoutes(app *fiber.App, db *gorm.DB) {
	hsCodeController := controllers.NewHSCodeController(db)
	hsCodes := app.Group(config.MAIN_ROUTES+"/hs-codes", middleware.AuthMiddleware)
	hsCodes.Post("/", hsCodeController.CreateHSCode)
	hsCodes.Get("/", hsCodeController.GetAllHSCodes)
	hsCodes.Get("/:id", hsCodeController.GetHSCodeByID)
	hsCodes.Put("/:id", hsCodeController.UpdateHSCode)
	hsCodes.Delete("/:id", hsCodeController.DeleteHSCode)

	bondLicenseController := controllers.NewBondLicenseController(db)
	licenses := app.Group(config.MAIN_ROUTES+"/bond-licenses", middleware.AuthMiddleware)
	licenses.Post("/", bondLicenseController.CreateBondLicense)
	licenses.Get("/", bondLicenseController.GetAllBondLicenses)
	licenses.Get("/:id", bondLicenseController.GetBondLicenseByID)
	licenses.Put("/:id", bondLicenseController.UpdateBondLicense)
	licenses.Delete("/:id", bondLicenseController.DeleteBondLicense)

	importController := controllers.NewImportDeclarationController(db)
	imports := app.Group(config.MAIN_ROUTES+"/import-declarations", middleware.AuthMiddleware)
	imports.Post("/", importController.CreateImportDeclaration)
	imports.Get("/", importController.GetAllImportDeclarations)
	imports.Get("/:id", importController.GetImportDeclarationByID)
	imports.Put("/:id", importController.UpdateImportDeclaration)
	imports.Delete("/:id", importController.DeleteImportDeclaration)

	exportController := controllers.NewExportDeclarationController(db)
	exports := app.Group(config.MAIN_ROUTES+"/export-declarations", middleware.AuthMiddleware)
	exports.Post("/", exportController.CreateExportDeclaration)
	exports.Get("/", exportController.GetAllExportDeclarations)
	exports.Get("/:id", exportController.GetExportDeclarationByID)
	exports.Put("/:id", exportController.UpdateExportDeclaration)
	exports.Delete("/:id", exportController.DeleteExportDeclaration)

	iocoController := controllers.NewIOCOController(db)
	ioco := app.Group(config.MAIN_ROUTES+"/ioco", middleware.AuthMiddleware)
	ioco.Post("/", iocoController.CreateIOCO)
	ioco.Get("/", iocoController.GetAllIOCO)
	ioco.Get("/:id", iocoController.GetIOCOByID)
	ioco.Put("/:id", iocoController.UpdateIOCO)
	ioco.Delete("/:id", iocoController.DeleteIOCO)
}
