package main

import (
	"context"
	"fmt"

	"shipments/cmd"
	httpin "shipments/internal/adapters/in/http"
	"shipments/internal/adapters/out/postgres/shipmentrepo"
	"shipments/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()

	// A missing .env file is fine. Real deployments set the environment directly.
	_ = godotenv.Load(".env")

	configs, err := cmd.LoadConfig(ctx)
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}

	log := logger.Init(logger.Options{
		Level:  configs.LogLevel,
		Pretty: configs.LogPretty,
	})

	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}

	err = gormDB.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ContactDTO{},
		&shipmentrepo.MovementDTO{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("migrate database schema")
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateRecordMovementCommandHandler(),
		app.CreateGetShipmentByTrackingNumberQueryHandler(),
		app.CreateGetMovementHistoryQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
