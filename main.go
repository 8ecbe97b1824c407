// @title CultivaTec Schools API
// @version 1.0
// @description Backend for the CultivaTec robotics-education school dashboard.

// @contact.name CultivaTec Support
// @contact.email soporte@cultivatec.mx

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/app"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/config"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/configwatcher"
	"github.com/cultivatecmx-maker/cultivatec-school/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Log level follows the config file without a restart.
	go configwatcher.WatchConfig("configs/config.yaml", func(updated *config.Config) {
		logger.SetMode(updated.Server.Mode)
	})

	application.Run()
}
