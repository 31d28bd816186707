package main

import (
	"sync"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/config"
	"github.com/praiaspe/litoral/internal/handler"
	"github.com/praiaspe/litoral/internal/weather"
	"github.com/praiaspe/litoral/pkg/http/client"
)

var (
	weatherHandler *handler.WeatherHandler
	setupOnce      sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		httpClient := client.New(client.Options{
			BaseURL: cfg.BrasilAPIBaseURL,
			Timeout: cfg.HTTPTimeout,
		})

		weatherHandler = handler.NewWeatherHandler(catalog.Default(), weather.NewService(httpClient))
	})
}

func main() {
	lambda.Start(weatherHandler.HandleRequest)
}
