package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/praiaspe/litoral/internal/api"
	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/models"
	"github.com/praiaspe/litoral/internal/tide"
)

// TidesHandler serves the tide-table endpoint: beach/port resolution,
// tabuamare fetch with calculated fallback.
type TidesHandler struct {
	tables  *catalog.Tables
	service *tide.Service

	// Now supplies the default date; injectable for tests.
	Now func() time.Time
}

func NewTidesHandler(tables *catalog.Tables, service *tide.Service) *TidesHandler {
	return &TidesHandler{
		tables:  tables,
		service: service,
		Now:     time.Now,
	}
}

func (h *TidesHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod == http.MethodOptions {
		return api.Preflight()
	}

	params := request.QueryStringParameters
	beach := params["beach"]
	portParam := params["port"]
	dateStr := params["date"]

	var port catalog.Port
	found := false
	if beach != "" {
		port, found = h.tables.ResolvePortForBeach(beach)
	} else if portParam != "" {
		port, found = h.tables.ResolvePort(portParam)
	}

	if !found {
		return api.Success(models.TideCatalogResponse{
			Success:          true,
			Message:          "Use ?beach=boa-viagem ou ?port=recife para obter dados de marés",
			AvailablePorts:   h.tables.PortInfos(),
			BeachPortMapping: h.tables.BeachPortMap(),
			Note:             "API de tábua de marés externa - dados calculados baseados em modelos",
		})
	}

	if dateStr == "" {
		dateStr = h.Now().UTC().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		log.Error().Err(err).Str("date", dateStr).Msg("Error parsing tide date")
		return api.Error(err.Error(), http.StatusInternalServerError)
	}

	var beachPtr *string
	if beach != "" {
		beachPtr = &beach
	}

	return api.Success(h.service.TideTable(ctx, port, beachPtr, date))
}
