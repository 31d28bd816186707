package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/config"
	"github.com/praiaspe/litoral/internal/handler"
	"github.com/praiaspe/litoral/internal/server"
	"github.com/praiaspe/litoral/internal/tide"
	"github.com/praiaspe/litoral/internal/weather"
	"github.com/praiaspe/litoral/pkg/http/client"
)

func main() {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	if cfg.Environment != "local" && cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tables := catalog.Default()

	weatherHandler := handler.NewWeatherHandler(tables, weather.NewService(client.New(client.Options{
		BaseURL: cfg.BrasilAPIBaseURL,
		Timeout: cfg.HTTPTimeout,
	})))

	tidesHandler := handler.NewTidesHandler(tables, tide.NewService(client.New(client.Options{
		BaseURL: cfg.TabuamareBaseURL,
		Timeout: cfg.HTTPTimeout,
		Headers: map[string]string{"Accept": "application/json"},
	})))

	r := server.New(weatherHandler.HandleRequest, tidesHandler.HandleRequest)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Dev server listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}
