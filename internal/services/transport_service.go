package services

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"locallens/internal/models/response_models"
)

type TransportEstimatorInterface interface {
	Estimate(ctx context.Context, origin, destination Coordinate, mode string) response_models.TransportDetails
}

type TransportEstimator struct {
	provider DirectionsProvider
}

func NewTransportEstimator(provider DirectionsProvider) TransportEstimatorInterface {
	return &TransportEstimator{provider: provider}
}

// Estimate never fails: a provider error yields zeroed details carrying only
// the requested mode, so a single bad leg cannot sink a whole itinerary.
func (t *TransportEstimator) Estimate(ctx context.Context, origin, destination Coordinate, mode string) response_models.TransportDetails {
	route, err := t.provider.GetDirections(ctx, origin, destination, mode)
	if err != nil {
		log.Printf("transport estimate failed for mode %s: %v", mode, err)
		return response_models.TransportDetails{Mode: mode}
	}

	distanceKm := ParseDistanceKm(route.Distance)
	return response_models.TransportDetails{
		Mode:              mode,
		TravelTimeMinutes: ParseDurationMinutes(route.Duration),
		DistanceKm:        distanceKm,
		FareEstimateINR:   EstimateFare(mode, distanceKm, route.TransitSteps),
		TransitSteps:      route.TransitSteps,
		Polyline:          route.Polyline,
	}
}

// ParseDurationMinutes turns a display string like "1 hour 23 mins" into
// total minutes. A non-number token is skipped one at a time so pairing
// re-aligns on the next number ("about 2 hours", "1 hour and 23 mins").
func ParseDurationMinutes(text string) int {
	fields := strings.Fields(text)
	total := 0
	for i := 0; i < len(fields); {
		value, err := strconv.Atoi(fields[i])
		if err != nil {
			i++
			continue
		}
		if i+1 < len(fields) {
			switch strings.ToLower(fields[i+1]) {
			case "hour", "hours":
				total += value * 60
			case "min", "mins", "minute", "minutes":
				total += value
			}
		}
		i += 2
	}
	return total
}

// ParseDistanceKm turns a display string like "4.2 km" or "850 m" into
// kilometers. An unrecognized or missing unit passes the value through as
// already being kilometers.
func ParseDistanceKm(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", ""), 64)
	if err != nil {
		return 0
	}
	if len(fields) < 2 {
		return value
	}
	switch strings.ToLower(fields[1]) {
	case "km", "kms":
		return value
	case "m", "meters":
		return value / 1000.0
	default:
		return value
	}
}

// EstimateFare prices a leg in INR by mode. Transit sums per-boarding fares
// plus a distance-ish surcharge per stops travelled; auto rickshaws use the
// meter formula rounded to the nearest 5 rupees.
func EstimateFare(mode string, distanceKm float64, steps []response_models.TransitStep) float64 {
	switch strings.ToLower(mode) {
	case "driving", "walking":
		return 0
	case "transit":
		total := 0.0
		for _, step := range steps {
			if step.TravelMode != "TRANSIT" {
				continue
			}
			fare := 10.0
			if step.LineName != nil {
				switch *step.LineName {
				case "28", "52", "38":
					fare = 15
				case "Metro":
					fare = 20
				}
			}
			total += fare
			if step.NumStops != nil {
				total += float64(*step.NumStops/5) * 2
			}
		}
		if total > 0 && total < 10 {
			total = 10
		}
		return total
	case "auto_rickshaw":
		return math.Round((30+15*distanceKm)/5) * 5
	default:
		return 0
	}
}
