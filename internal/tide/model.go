package tide

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/models"
)

// Calculator produces a semidiurnal tide table from a simplified lunar-cycle
// model. It is the fallback when the tide-table API is unreachable and is not
// an oceanographic simulation: amplitude follows an approximate 29.5-day
// synodic cycle and event times advance ~50 minutes per day.
//
// Apart from the jitter term on event heights, the output is a pure function
// of the date, so the model is safe for concurrent use.
type Calculator struct {
	// Rand supplies the height jitter in [0,1). Tests pin it for exact output.
	Rand func() float64
}

func NewCalculator() *Calculator {
	return &Calculator{Rand: rand.Float64}
}

// Calculate returns the four tide events (two high, two low) for the given
// calendar date at a reference port, sorted by time of day.
func (c *Calculator) Calculate(date time.Time, port catalog.Port) []models.TideEvent {
	dayOfYear := float64(date.YearDay())

	// Amplitude peaks near new/full moon (spring tides).
	lunarPhase := math.Mod(dayOfYear, 29.5) / 29.5
	springTideFactor := math.Abs(math.Cos(lunarPhase * 2 * math.Pi))
	amplitude := 1.2 * (0.7 + 0.6*springTideFactor)

	// ~50 minute daily lag of the lunar day.
	baseHour := math.Mod(dayOfYear*0.84, 24)

	events := make([]models.TideEvent, 0, 4)
	for i := 0; i < 4; i++ {
		hour := math.Mod(baseHour+float64(i)*6.2, 24)
		isHigh := i%2 == 0

		var height float64
		var description string
		if isHigh {
			height = 1.5 + amplitude*(0.8+0.2*c.Rand())
			if height > 2 {
				description = "Maré alta - Maré de sizígia (lua cheia/nova)"
			} else {
				description = "Maré alta - Maré normal"
			}
		} else {
			height = 0.3 + 0.3*c.Rand()
			if height < 0.4 {
				description = "Maré baixa - Boa para caminhada nos arrecifes"
			} else {
				description = "Maré baixa - Maré baixa normal"
			}
		}

		eventType := models.TideTypeLow
		if isHigh {
			eventType = models.TideTypeHigh
		}

		hours := int(hour)
		minutes := int((hour - float64(hours)) * 60)

		events = append(events, models.TideEvent{
			Time:        fmt.Sprintf("%02d:%02d", hours, minutes),
			Type:        eventType,
			HeightM:     math.Round(height*10) / 10,
			Description: description,
		})
	}

	// Zero-padded same-day times sort chronologically as strings.
	sort.Slice(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})

	return events
}
