package main

import (
	"log"

	_ "vendor_registration/docs"
	"vendor_registration/internal/adapter/http/routes"
	"vendor_registration/internal/config"
	"vendor_registration/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Vendor Registration API
// @version         1.0
// @description     Accepts vendor registrations, validates them and records them in Zoho CRM.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer logger.Sync()

	if err := routes.Run(cfg); err != nil {
		logger.L().Fatal("[main] server stopped with error", zap.Error(err))
	}
}
