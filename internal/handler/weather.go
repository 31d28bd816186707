package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/praiaspe/litoral/internal/api"
	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/models"
	"github.com/praiaspe/litoral/internal/weather"
)

// WeatherHandler serves the marine weather endpoint: beach/city resolution,
// CPTEC fetch with degraded fallback, response shaping.
type WeatherHandler struct {
	tables  *catalog.Tables
	service *weather.Service
}

func NewWeatherHandler(tables *catalog.Tables, service *weather.Service) *WeatherHandler {
	return &WeatherHandler{
		tables:  tables,
		service: service,
	}
}

func (h *WeatherHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if request.HTTPMethod == http.MethodOptions {
		return api.Preflight()
	}

	params := request.QueryStringParameters
	beach := params["beach"]
	city := params["city"]
	days := params["days"]
	if days == "" {
		days = "1"
	}

	// beach takes precedence over city when both are supplied
	var resolved catalog.City
	found := false
	if beach != "" {
		resolved, found = h.tables.ResolveCityForBeach(beach)
	} else if city != "" {
		resolved, found = h.tables.ResolveCity(city)
	}

	if !found {
		return api.Success(models.WeatherCatalogResponse{
			Success:          true,
			Message:          "Use ?city=recife ou ?beach=boa-viagem para obter dados meteorológicos",
			AvailableCities:  h.tables.CityInfos(),
			AvailableBeaches: h.tables.BeachCityInfos(),
		})
	}

	log.Info().Str("city", resolved.Name).Int("code", resolved.Code).Str("days", days).Msg("Fetching weather")

	result, err := h.service.FetchForecast(ctx, resolved, days)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching weather data")
		return api.Error(err.Error(), http.StatusInternalServerError)
	}

	switch result.Status {
	case weather.StatusOK:
		return api.Success(h.service.Shape(result.Waves, resolved, beach))
	case weather.StatusDegraded:
		return api.Success(models.ForecastFallbackResponse{
			Success:  true,
			Source:   "cptec_forecast",
			City:     resolved.Name,
			CityCode: resolved.Code,
			Data:     result.Forecast,
			Note:     "Dados de previsão geral (ondas não disponíveis)",
		})
	default:
		log.Warn().Str("reason", result.Reason).Msg("Weather upstreams exhausted")
		return api.JSON(models.WeatherUnavailableResponse{
			Success:  false,
			Error:    "Dados meteorológicos não disponíveis para esta cidade",
			City:     resolved.Name,
			CityCode: resolved.Code,
		}, http.StatusServiceUnavailable)
	}
}
