package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"locallens/internal/models/response_models"
)

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"minutes only", "23 mins", 23},
		{"single minute", "1 min", 1},
		{"hours and minutes", "1 hour 23 mins", 83},
		{"plural hours", "2 hours 5 mins", 125},
		{"hours only", "3 hours", 180},
		{"leading word", "about 2 hours", 120},
		{"connector word", "1 hour and 23 mins", 83},
		{"empty", "", 0},
		{"garbage", "soon", 0},
		{"unknown unit skipped", "4 fortnights 10 mins", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseDurationMinutes(tc.text); got != tc.want {
				t.Errorf("ParseDurationMinutes(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseDistanceKm(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{"kilometers", "4.2 km", 4.2},
		{"plural kms", "12 kms", 12},
		{"meters", "850 m", 0.85},
		{"meters word", "500 meters", 0.5},
		{"thousands separator", "1,234 m", 1.234},
		{"unknown unit passes through", "3.1 mi", 3.1},
		{"missing unit passes through", "42", 42},
		{"empty", "", 0},
		{"not a number", "far", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDistanceKm(tc.text)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ParseDistanceKm(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }

func transitStep(line *string, stops *int) response_models.TransitStep {
	return response_models.TransitStep{TravelMode: "TRANSIT", LineName: line, NumStops: stops}
}

func TestEstimateFare(t *testing.T) {
	cases := []struct {
		name       string
		mode       string
		distanceKm float64
		steps      []response_models.TransitStep
		want       float64
	}{
		{"driving is free", "driving", 12.5, nil, 0},
		{"walking is free", "walking", 3, nil, 0},
		{"mode is case insensitive", "DRIVING", 8, nil, 0},
		{"unknown mode", "helicopter", 50, nil, 0},
		{"auto short hop", "auto_rickshaw", 2, nil, 60},
		{"auto ten km", "auto_rickshaw", 10, nil, 180},
		{"auto rounds to nearest five", "auto_rickshaw", 3.4, nil, 80},
		{
			"transit default line",
			"transit", 0,
			[]response_models.TransitStep{transitStep(strp("ordinary bus"), intp(3))},
			10,
		},
		{
			"transit nil line name",
			"transit", 0,
			[]response_models.TransitStep{transitStep(nil, nil)},
			10,
		},
		{
			"transit premium bus line",
			"transit", 0,
			[]response_models.TransitStep{transitStep(strp("28"), intp(2))},
			15,
		},
		{
			"metro with stop surcharge",
			"transit", 0,
			[]response_models.TransitStep{transitStep(strp("Metro"), intp(6))},
			22,
		},
		{
			"walking connectors ignored",
			"transit", 0,
			[]response_models.TransitStep{
				{TravelMode: "WALKING"},
				transitStep(strp("52"), intp(9)),
				{TravelMode: "WALKING"},
			},
			17,
		},
		{
			"multi leg journey",
			"transit", 0,
			[]response_models.TransitStep{
				transitStep(strp("38"), intp(10)),
				transitStep(strp("Metro"), intp(4)),
			},
			39,
		},
		{"transit with no boardings", "transit", 5, nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateFare(tc.mode, tc.distanceKm, tc.steps)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("EstimateFare(%s, %v) = %v, want %v", tc.mode, tc.distanceKm, got, tc.want)
			}
		})
	}
}

type stubDirections struct {
	route *RouteSummary
	err   error
}

func (s *stubDirections) GetDirections(_ context.Context, _, _ Coordinate, _ string) (*RouteSummary, error) {
	return s.route, s.err
}

func TestEstimateNeverFails(t *testing.T) {
	estimator := NewTransportEstimator(&stubDirections{err: errors.New("provider down")})

	got := estimator.Estimate(context.Background(), Coordinate{}, Coordinate{}, "transit")
	if got.Mode != "transit" {
		t.Errorf("Mode = %q, want transit", got.Mode)
	}
	if got.TravelTimeMinutes != 0 || got.DistanceKm != 0 || got.FareEstimateINR != 0 {
		t.Errorf("expected zeroed details on provider failure, got %+v", got)
	}
}

func TestEstimateMapsRoute(t *testing.T) {
	estimator := NewTransportEstimator(&stubDirections{route: &RouteSummary{
		Duration: "1 hour 5 mins",
		Distance: "18.4 km",
		Polyline: "abc123",
	}})

	got := estimator.Estimate(context.Background(), Coordinate{}, Coordinate{Lat: 17.7, Lng: 83.3}, "auto_rickshaw")
	if got.TravelTimeMinutes != 65 {
		t.Errorf("TravelTimeMinutes = %d, want 65", got.TravelTimeMinutes)
	}
	if math.Abs(got.DistanceKm-18.4) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 18.4", got.DistanceKm)
	}
	// (30 + 15*18.4)/5 rounded then *5
	if got.FareEstimateINR != 305 {
		t.Errorf("FareEstimateINR = %v, want 305", got.FareEstimateINR)
	}
	if got.Polyline != "abc123" {
		t.Errorf("Polyline = %q", got.Polyline)
	}
}
