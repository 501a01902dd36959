package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"time"

	"locallens/internal/models/response_models"
)

type Coordinate struct {
	Lat float64
	Lng float64
}

// RouteSummary is one leg of a directions lookup. Duration and Distance keep
// the provider's display strings; the transport estimator normalizes them.
type RouteSummary struct {
	Duration     string
	Distance     string
	Polyline     string
	TransitSteps []response_models.TransitStep
}

type DirectionsProvider interface {
	GetDirections(ctx context.Context, origin, destination Coordinate, mode string) (*RouteSummary, error)
}

// -------------- Google Directions client ---------------

type GoogleDirectionsClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string // overridable for tests
}

func NewGoogleDirectionsClient() *GoogleDirectionsClient {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		panic("GOOGLE_MAPS_API_KEY is empty")
	}
	return &GoogleDirectionsClient{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		APIKey:  key,
		BaseURL: "https://maps.googleapis.com",
	}
}

// wireMode maps planner transport modes onto what the Directions API accepts.
// auto_rickshaw has no API equivalent and rides on driving routes.
func wireMode(mode string) string {
	if mode == "auto_rickshaw" {
		return "driving"
	}
	return mode
}

type valueText struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type directionsPayload struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance valueText `json:"distance"`
			Duration valueText `json:"duration"`
			Steps    []struct {
				TravelMode       string    `json:"travel_mode"`
				HTMLInstructions string    `json:"html_instructions"`
				Duration         valueText `json:"duration"`
				TransitDetails   *struct {
					Line struct {
						Name string `json:"name"`
					} `json:"line"`
					DepartureStop struct {
						Name string `json:"name"`
					} `json:"departure_stop"`
					ArrivalStop struct {
						Name string `json:"name"`
					} `json:"arrival_stop"`
					DepartureTime struct {
						Text string `json:"text"`
					} `json:"departure_time"`
					ArrivalTime struct {
						Text string `json:"text"`
					} `json:"arrival_time"`
					NumStops *int `json:"num_stops"`
				} `json:"transit_details"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func (c *GoogleDirectionsClient) GetDirections(ctx context.Context, origin, destination Coordinate, mode string) (*RouteSummary, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("directions base url: %w", err)
	}
	u.Path = "/maps/api/directions/json"
	q := url.Values{}
	q.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	q.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
	q.Set("mode", wireMode(mode))
	q.Set("alternatives", "true")
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("directions bad status: %s", resp.Status)
	}

	var payload directionsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("directions decode: %w", err)
	}

	if payload.Status != "OK" || len(payload.Routes) == 0 {
		return nil, fmt.Errorf("directions failed with status: %s", payload.Status)
	}

	route := payload.Routes[0]
	if len(route.Legs) == 0 {
		return nil, fmt.Errorf("no legs found in route")
	}
	leg := route.Legs[0]

	summary := &RouteSummary{
		Duration: leg.Duration.Text,
		Distance: leg.Distance.Text,
		Polyline: route.OverviewPolyline.Points,
	}

	// Step detail only matters for transit journeys; walking connectors
	// between transit legs keep just instruction, mode and duration.
	if mode == "transit" {
		steps := make([]response_models.TransitStep, 0, len(leg.Steps))
		for _, step := range leg.Steps {
			minutes := int(math.Round(float64(step.Duration.Value) / 60.0))
			if step.TravelMode == "TRANSIT" && step.TransitDetails != nil {
				td := step.TransitDetails
				steps = append(steps, response_models.TransitStep{
					Instruction:     step.HTMLInstructions,
					TravelMode:      step.TravelMode,
					LineName:        strPtr(td.Line.Name),
					DepartureStop:   strPtr(td.DepartureStop.Name),
					ArrivalStop:     strPtr(td.ArrivalStop.Name),
					DepartureTime:   strPtr(td.DepartureTime.Text),
					ArrivalTime:     strPtr(td.ArrivalTime.Text),
					NumStops:        td.NumStops,
					DurationMinutes: minutes,
				})
			} else {
				steps = append(steps, response_models.TransitStep{
					Instruction:     step.HTMLInstructions,
					TravelMode:      step.TravelMode,
					DurationMinutes: minutes,
				})
			}
		}
		summary.TransitSteps = steps
	}

	return summary, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
