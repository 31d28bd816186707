package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/models"
	"github.com/praiaspe/litoral/pkg/http/client"
)

// FetchStatus tags the outcome of the two-tier CPTEC fetch.
type FetchStatus int

const (
	// StatusOK means the wave product answered.
	StatusOK FetchStatus = iota
	// StatusDegraded means waves were down but the general city forecast answered.
	StatusDegraded
	// StatusUnavailable means both products failed.
	StatusUnavailable
)

// ForecastResult is the tagged outcome of FetchForecast. Waves is set on
// StatusOK, Forecast on StatusDegraded.
type ForecastResult struct {
	Status   FetchStatus
	Waves    *models.CPTECWaveResponse
	Forecast json.RawMessage
	Reason   string
}

// Service fetches CPTEC marine forecasts through BrasilAPI and shapes them
// into the public contract.
type Service struct {
	HttpClient client.Interface
}

func NewService(httpClient client.Interface) *Service {
	return &Service{HttpClient: httpClient}
}

// FetchForecast tries the wave product first and the general city forecast as
// a degraded fallback. Only a non-success status triggers the fallback;
// transport errors and malformed payloads are returned as errors and end up
// on the 500 path.
func (s *Service) FetchForecast(ctx context.Context, city catalog.City, days string) (ForecastResult, error) {
	resp, err := s.HttpClient.Get(ctx, fmt.Sprintf("/api/cptec/v1/ondas/%d/%s", city.Code, url.PathEscape(days)))
	if err != nil {
		return ForecastResult{}, fmt.Errorf("fetching wave forecast: %w", err)
	}

	if resp.IsSuccess() {
		var waves models.CPTECWaveResponse
		if err := json.Unmarshal(resp.Body, &waves); err != nil {
			return ForecastResult{}, fmt.Errorf("decoding wave forecast: %w", err)
		}
		return ForecastResult{Status: StatusOK, Waves: &waves}, nil
	}

	log.Error().Int("status", resp.StatusCode).Msg("BrasilAPI wave product error")

	fallback, err := s.HttpClient.Get(ctx, fmt.Sprintf("/api/cptec/v1/cidade/%d", city.Code))
	if err != nil {
		return ForecastResult{}, fmt.Errorf("fetching city forecast: %w", err)
	}
	if fallback.IsSuccess() {
		if !json.Valid(fallback.Body) {
			return ForecastResult{}, fmt.Errorf("decoding city forecast: invalid JSON")
		}
		return ForecastResult{Status: StatusDegraded, Forecast: fallback.Body}, nil
	}

	return ForecastResult{
		Status: StatusUnavailable,
		Reason: fmt.Sprintf("wave product status %d, city forecast status %d", resp.StatusCode, fallback.StatusCode),
	}, nil
}

// Shape maps the upstream wave payload into the public contract, enriching
// each sample with a recommendation. beach may be empty; when present a
// beach-conditions summary is attached.
func (s *Service) Shape(waves *models.CPTECWaveResponse, city catalog.City, beach string) *models.WaveForecastResponse {
	cityName := waves.Cidade
	if cityName == "" {
		cityName = city.Name
	}
	state := waves.Estado
	if state == "" {
		state = "PE"
	}

	days := make([]models.WaveDayForecast, len(waves.Ondas))
	for i, day := range waves.Ondas {
		conditions := make([]models.WaveCondition, len(day.DadosOndas))
		for j, sample := range day.DadosOndas {
			conditions[j] = models.WaveCondition{
				Time:                     sample.Hora,
				WindSpeedKmh:             sample.Vento,
				WindDirection:            sample.DirecaoVento,
				WindDirectionDescription: sample.DirecaoVentoDesc,
				WaveHeightM:              sample.AlturaOnda,
				WaveDirection:            sample.DirecaoOnda,
				WaveDirectionDescription: sample.DirecaoOndaDesc,
				SeaState:                 sample.Agitacao,
				Recommendation:           Recommendation(sample.Agitacao, sample.AlturaOnda, sample.Vento),
			}
		}
		days[i] = models.WaveDayForecast{Date: day.Data, Conditions: conditions}
	}

	resp := &models.WaveForecastResponse{
		Success:      true,
		Source:       "cptec_ondas",
		City:         cityName,
		State:        state,
		CityCode:     city.Code,
		UpdatedAt:    waves.AtualizadoEm,
		ForecastDays: len(waves.Ondas),
		Waves:        days,
	}
	if beach != "" {
		resp.BeachConditions = beachConditions(waves, beach)
	}
	return resp
}

// Recommendation derives a qualitative swimming/surfing hint from the sea
// state text, wave height and wind speed. Rules are ordered; the first match
// wins.
func Recommendation(seaState string, waveHeightM, windSpeedKmh float64) string {
	state := strings.ToLower(seaState)

	switch {
	// Waves from 1.5m up are advanced territory no matter what the
	// qualitative label says.
	case strings.Contains(state, "forte") || waveHeightM >= 1.5:
		return "Ideal para surfe avançado. Cuidado ao nadar"
	case strings.Contains(state, "fraco") || (waveHeightM < 0.5 && windSpeedKmh < 15):
		return "Excelente para banho e atividades aquáticas leves"
	case strings.Contains(state, "moderado") || (waveHeightM < 1.5 && windSpeedKmh < 25):
		return "Bom para natação experiente e surfe intermediário"
	default:
		return "Verifique condições locais antes de entrar no mar"
	}
}

// beachConditions summarizes day one for a named beach, preferring the midday
// (12Z) sample.
func beachConditions(waves *models.CPTECWaveResponse, beachName string) *models.BeachConditions {
	if len(waves.Ondas) == 0 || len(waves.Ondas[0].DadosOndas) == 0 {
		return &models.BeachConditions{Status: "Dados não disponíveis"}
	}

	today := waves.Ondas[0]
	sample := today.DadosOndas[0]
	for _, s := range today.DadosOndas {
		if s.Hora == "12Z" {
			sample = s
			break
		}
	}

	return &models.BeachConditions{
		Beach: beachName,
		Date:  today.Data,
		Summary: &models.BeachSummary{
			SeaState:       sample.Agitacao,
			WaveHeight:     formatNumber(sample.AlturaOnda) + "m",
			Wind:           formatNumber(sample.Vento) + " km/h " + sample.DirecaoVentoDesc,
			Recommendation: Recommendation(sample.Agitacao, sample.AlturaOnda, sample.Vento),
		},
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
