package routes

import (
	"bonded-wms/config"
	"bonded-wms/controllers"
	"bonded-wms/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSupplierRoutes(app *fiber.App, db *gorm.DB) {
	supplierController := controllers.NewSupplierController(db)

	api := app.Group(config.MAIN_ROUTES+"/suppliers", middleware.AuthMiddleware)
	api.Post("/", supplierController.CreateSupplier)
	api.Get("/", supplierController.GetAllSuppliers)
	api.Get("/:id", supplierController.GetSupplierByID)
	api.Put("/:id", supplierController.UpdateSupplier)
	api.Delete("/:id", supplierController.DeleteSupplier)
}

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	categoryController := controllers.NewCategoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/categories", middleware.AuthMiddleware)
	api.Post("/", categoryController.CreateCategory)
	api.Get("/", categoryController.GetAllCategories)
	api.Get("/:id", categoryController.GetCategoryByID)
	api.Put("/:id", categoryController.UpdateCategory)
	api.Delete("/:id", categoryController.DeleteCategory)
}

func SetupUomRoutes(app *fiber.App, db *gorm.DB) {
	uomController := controllers.NewUomController(db)

	api := app.Group(config.MAIN_ROUTES+"/uoms", middleware.AuthMiddleware)
	api.Post("/", uomController.CreateUom)
	api.Get("/", uomController.GetAllUoms)
	api.Get("/:id", uomController.GetUomByID)
	api.Put("/:id", uomController.UpdateUom)
	api.Delete("/:id", uomController.DeleteUom)
}

func SetupWarehouseRoutes(app *fiber.App, db *gorm.DB) {
	warehouseController := controllers.NewWarehouseController(db)

	api := app.Group(config.MAIN_ROUTES+"/warehouses", middleware.AuthMiddleware)
	api.Post("/", warehouseController.CreateWarehouse)
	api.Get("/", warehouseController.GetAllWarehouses)
	api.Get("/:id", warehouseController.GetWarehouseByID)
	api.Put("/:id", warehouseController.UpdateWarehouse)
	api.Delete("/:id", warehouseController.DeleteWarehouse)
}

func SetupProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewProductController(db)

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)
	api.Post("/upload-excel", productController.CreateProductsFromExcel)
	api.Post("/", productController.CreateProduct)
	api.Get("/", productController.GetAllProducts)
	api.Get("/:id", productController.GetProductByID)
	api.Put("/:id", productController.UpdateProduct)
	api.Delete("/:id", productController.DeleteProduct)
}
