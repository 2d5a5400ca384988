package main

import (
	"os"

	"github.com/Naveen0030/eims-clg-portal/internal/pkg/logger"
	"github.com/Naveen0030/eims-clg-portal/internal/server"
)

// @title EIMS Portal API
// @version 1.0
// @description Role-based enrollment management backend for academic courses.

// @contact.name API Support
// @contact.email support@eims.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
