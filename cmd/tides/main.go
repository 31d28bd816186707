package main

import (
	"sync"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/config"
	"github.com/praiaspe/litoral/internal/handler"
	"github.com/praiaspe/litoral/internal/tide"
	"github.com/praiaspe/litoral/pkg/http/client"
)

var (
	tidesHandler *handler.TidesHandler
	setupOnce    sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		httpClient := client.New(client.Options{
			BaseURL: cfg.TabuamareBaseURL,
			Timeout: cfg.HTTPTimeout,
			Headers: map[string]string{"Accept": "application/json"},
		})

		tidesHandler = handler.NewTidesHandler(catalog.Default(), tide.NewService(httpClient))
	})
}

func main() {
	lambda.Start(tidesHandler.HandleRequest)
}
