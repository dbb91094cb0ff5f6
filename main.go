package main

import (
	"bonded-wms/config"
	"bonded-wms/database"
	"bonded-wms/idgen"
	"bonded-wms/logger"
	"bonded-wms/routes"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	log := logger.Init(config.APP_ENV, config.LogLevel)
	defer log.Sync()

	if err := database.EnsureDatabaseExists(config.DBName); err != nil {
		log.Fatal("Failed to prepare database", zap.Error(err))
	}

	db, err := database.Open()
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to auto migrate", zap.Error(err))
	}

	idgen.Init()
	if config.DBSeed {
		if err := database.RunSeeders(db); err != nil {
			log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	app := routes.NewApp(db)

	port := config.APP_PORT
	log.Info("Server listening", zap.String("port", port), zap.String("env", config.APP_ENV))
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
