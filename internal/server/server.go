// Package server mounts the Lambda handlers behind a plain HTTP router so
// the functions can be exercised locally without an API Gateway emulator.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// LambdaFunc is the Lambda proxy handler signature shared by both endpoints.
type LambdaFunc func(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// New builds the dev router with permissive CORS, matching what the hosted
// functions send.
func New(weatherFunc, tidesFunc LambdaFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/functions/v1/weather", adapt(weatherFunc))
	r.GET("/functions/v1/tides", adapt(tidesFunc))
	r.GET("/api/v1/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "API running"})
	})

	return r
}

// adapt bridges a gin request into the API Gateway proxy shape and writes the
// proxy response back.
func adapt(fn LambdaFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		resp, err := fn(c.Request.Context(), events.APIGatewayProxyRequest{
			HTTPMethod:            c.Request.Method,
			Path:                  c.Request.URL.Path,
			QueryStringParameters: params,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		c.Data(resp.StatusCode, "application/json", []byte(resp.Body))
	}
}
