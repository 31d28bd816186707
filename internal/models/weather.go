package models

import "encoding/json"

// CPTEC wave-forecast payload as served by BrasilAPI
// (GET /api/cptec/v1/ondas/{cityCode}/{days}).
type CPTECWaveResponse struct {
	Cidade       string         `json:"cidade"`
	Estado       string         `json:"estado"`
	AtualizadoEm string         `json:"atualizado_em"`
	Ondas        []CPTECWaveDay `json:"ondas"`
}

type CPTECWaveDay struct {
	Data       string            `json:"data"`
	DadosOndas []CPTECWaveSample `json:"dados_ondas"`
}

type CPTECWaveSample struct {
	Vento            float64 `json:"vento"`
	DirecaoVento     string  `json:"direcao_vento"`
	DirecaoVentoDesc string  `json:"direcao_vento_desc"`
	AlturaOnda       float64 `json:"altura_onda"`
	DirecaoOnda      string  `json:"direcao_onda"`
	DirecaoOndaDesc  string  `json:"direcao_onda_desc"`
	Agitacao         string  `json:"agitacao"`
	Hora             string  `json:"hora"`
}

// WaveCondition is one shaped per-hour sample in the public contract.
type WaveCondition struct {
	Time                     string  `json:"time"`
	WindSpeedKmh             float64 `json:"wind_speed_kmh"`
	WindDirection            string  `json:"wind_direction"`
	WindDirectionDescription string  `json:"wind_direction_description"`
	WaveHeightM              float64 `json:"wave_height_m"`
	WaveDirection            string  `json:"wave_direction"`
	WaveDirectionDescription string  `json:"wave_direction_description"`
	SeaState                 string  `json:"sea_state"`
	Recommendation           string  `json:"recommendation"`
}

type WaveDayForecast struct {
	Date       string          `json:"date"`
	Conditions []WaveCondition `json:"conditions"`
}

// BeachConditions summarizes the day for one beach. Status is only set when
// the upstream payload carried no samples to summarize.
type BeachConditions struct {
	Status  string        `json:"status,omitempty"`
	Beach   string        `json:"beach,omitempty"`
	Date    string        `json:"date,omitempty"`
	Summary *BeachSummary `json:"summary,omitempty"`
}

type BeachSummary struct {
	SeaState       string `json:"sea_state"`
	WaveHeight     string `json:"wave_height"`
	Wind           string `json:"wind"`
	Recommendation string `json:"recommendation"`
}

// WaveForecastResponse is the primary success body of the weather endpoint.
type WaveForecastResponse struct {
	Success         bool              `json:"success"`
	Source          string            `json:"source"`
	City            string            `json:"city"`
	State           string            `json:"state"`
	CityCode        int               `json:"city_code"`
	UpdatedAt       string            `json:"updated_at"`
	ForecastDays    int               `json:"forecast_days"`
	Waves           []WaveDayForecast `json:"waves"`
	BeachConditions *BeachConditions  `json:"beach_conditions"`
}

// ForecastFallbackResponse is returned when the wave product is down but the
// general city forecast answered. Data is the untouched upstream payload.
type ForecastFallbackResponse struct {
	Success  bool            `json:"success"`
	Source   string          `json:"source"`
	City     string          `json:"city"`
	CityCode int             `json:"city_code"`
	Data     json.RawMessage `json:"data"`
	Note     string          `json:"note"`
}

// WeatherUnavailableResponse is the 503 body when both upstreams failed.
type WeatherUnavailableResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	City     string `json:"city"`
	CityCode int    `json:"city_code"`
}

type CityInfo struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Code int    `json:"code"`
}

type BeachCityInfo struct {
	Beach string `json:"beach"`
	City  string `json:"city"`
}

// WeatherCatalogResponse lists the known cities and beaches when the request
// named no resolvable city.
type WeatherCatalogResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	AvailableCities  []CityInfo      `json:"available_cities"`
	AvailableBeaches []BeachCityInfo `json:"available_beaches"`
}
