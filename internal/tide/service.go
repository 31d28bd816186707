package tide

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/models"
	"github.com/praiaspe/litoral/pkg/http/client"
)

const disclaimer = "Dados calculados por modelo simplificado. Para navegação, consulte a Marinha do Brasil."

// FetchStatus tags the outcome of the upstream tide-table call.
type FetchStatus int

const (
	StatusOK FetchStatus = iota
	StatusUnavailable
)

// TableResult is the tagged outcome of FetchTable. Raw is only set on
// StatusOK; Reason describes the failure otherwise.
type TableResult struct {
	Status FetchStatus
	Raw    json.RawMessage
	Reason string
}

// Service answers tide-table requests: upstream tabuamare first, the
// calculated model when it is unreachable. The fallback is an expected path,
// logged but never surfaced as an error.
type Service struct {
	HttpClient client.Interface
	Calculator *Calculator
}

func NewService(httpClient client.Interface) *Service {
	return &Service{
		HttpClient: httpClient,
		Calculator: NewCalculator(),
	}
}

// FetchTable calls the tabuamare API for one port and date. Any transport
// error, non-2xx status or malformed body is an Unavailable result, not an
// error: the caller is expected to fall back to the calculated model.
func (s *Service) FetchTable(ctx context.Context, port catalog.Port, date time.Time) TableResult {
	path := fmt.Sprintf("/api/v1/tides?port=%s&date=%s",
		url.QueryEscape(port.Name), date.Format("2006-01-02"))

	resp, err := s.HttpClient.Get(ctx, path)
	if err != nil {
		return TableResult{Status: StatusUnavailable, Reason: err.Error()}
	}
	if !resp.IsSuccess() {
		return TableResult{Status: StatusUnavailable, Reason: fmt.Sprintf("upstream status %d", resp.StatusCode)}
	}
	if !json.Valid(resp.Body) {
		return TableResult{Status: StatusUnavailable, Reason: "upstream returned malformed JSON"}
	}

	return TableResult{Status: StatusOK, Raw: resp.Body}
}

// TideTable builds the full tides response for a resolved port. beach echoes
// the caller's beach parameter and may be nil.
func (s *Service) TideTable(ctx context.Context, port catalog.Port, beach *string, date time.Time) *models.TideTableResponse {
	dateStr := date.Format("2006-01-02")
	log.Info().Str("port", port.Name).Str("date", dateStr).Msg("Fetching tide table")

	result := s.FetchTable(ctx, port, date)
	if result.Status == StatusOK {
		return &models.TideTableResponse{
			Success:         true,
			Source:          "tabuamare",
			Port:            port.Name,
			PortCoordinates: models.Coordinates{Lat: port.Lat, Lon: port.Lon},
			Date:            dateStr,
			Beach:           beach,
			Data:            result.Raw,
		}
	}

	log.Info().Str("reason", result.Reason).Msg("Tabuamare API not available, using calculated data")

	return &models.TideTableResponse{
		Success:         true,
		Source:          "calculated",
		Port:            port.Name,
		PortCoordinates: models.Coordinates{Lat: port.Lat, Lon: port.Lon},
		Date:            dateStr,
		Beach:           beach,
		Tides:           s.Calculator.Calculate(date, port),
		Disclaimer:      disclaimer,
	}
}
