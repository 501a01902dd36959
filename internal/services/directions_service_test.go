package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

const transitDirectionsPayload = `{
  "status": "OK",
  "routes": [{
    "overview_polyline": {"points": "poly123"},
    "legs": [{
      "distance": {"text": "7.5 km", "value": 7500},
      "duration": {"text": "42 mins", "value": 2520},
      "steps": [
        {
          "travel_mode": "WALKING",
          "html_instructions": "Walk to RTC Complex",
          "duration": {"text": "5 mins", "value": 300}
        },
        {
          "travel_mode": "TRANSIT",
          "html_instructions": "Bus towards Beach Road",
          "duration": {"text": "35 mins", "value": 2100},
          "transit_details": {
            "line": {"name": "28"},
            "departure_stop": {"name": "RTC Complex"},
            "arrival_stop": {"name": "Beach Road"},
            "departure_time": {"text": "10:05 AM"},
            "arrival_time": {"text": "10:40 AM"},
            "num_stops": 12
          }
        }
      ]
    }]
  }]
}`

func newTestClient(server *httptest.Server) *GoogleDirectionsClient {
	return &GoogleDirectionsClient{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		APIKey:  "test-key",
		BaseURL: server.URL,
	}
}

func TestGetDirectionsTransit(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(transitDirectionsPayload))
	}))
	defer server.Close()

	client := newTestClient(server)
	route, err := client.GetDirections(context.Background(),
		Coordinate{Lat: 17.72, Lng: 83.30},
		Coordinate{Lat: 17.75, Lng: 83.34},
		"transit")
	if err != nil {
		t.Fatalf("GetDirections: %v", err)
	}

	if gotQuery.Get("mode") != "transit" {
		t.Errorf("mode = %q, want transit", gotQuery.Get("mode"))
	}
	if gotQuery.Get("key") != "test-key" {
		t.Errorf("key = %q", gotQuery.Get("key"))
	}

	if route.Duration != "42 mins" || route.Distance != "7.5 km" {
		t.Errorf("leg summary = %q / %q", route.Duration, route.Distance)
	}
	if route.Polyline != "poly123" {
		t.Errorf("Polyline = %q", route.Polyline)
	}
	if len(route.TransitSteps) != 2 {
		t.Fatalf("got %d transit steps, want 2", len(route.TransitSteps))
	}

	walk := route.TransitSteps[0]
	if walk.TravelMode != "WALKING" || walk.LineName != nil || walk.DurationMinutes != 5 {
		t.Errorf("walking step = %+v", walk)
	}

	bus := route.TransitSteps[1]
	if bus.LineName == nil || *bus.LineName != "28" {
		t.Errorf("LineName = %v, want 28", bus.LineName)
	}
	if bus.NumStops == nil || *bus.NumStops != 12 {
		t.Errorf("NumStops = %v, want 12", bus.NumStops)
	}
	if bus.DepartureStop == nil || *bus.DepartureStop != "RTC Complex" {
		t.Errorf("DepartureStop = %v", bus.DepartureStop)
	}
	if bus.DurationMinutes != 35 {
		t.Errorf("DurationMinutes = %d, want 35", bus.DurationMinutes)
	}
}

func TestGetDirectionsNonTransitSkipsSteps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("mode"); got != "driving" {
			t.Errorf("wire mode = %q, want driving", got)
		}
		_, _ = w.Write([]byte(transitDirectionsPayload))
	}))
	defer server.Close()

	client := newTestClient(server)
	route, err := client.GetDirections(context.Background(), Coordinate{}, Coordinate{}, "auto_rickshaw")
	if err != nil {
		t.Fatalf("GetDirections: %v", err)
	}
	if len(route.TransitSteps) != 0 {
		t.Errorf("expected no transit steps for auto_rickshaw, got %d", len(route.TransitSteps))
	}
}

func TestGetDirectionsErrors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		payload string
	}{
		{"provider status not ok", http.StatusOK, `{"status": "ZERO_RESULTS", "routes": []}`},
		{"empty routes", http.StatusOK, `{"status": "OK", "routes": []}`},
		{"route without legs", http.StatusOK, `{"status": "OK", "routes": [{"legs": []}]}`},
		{"http error", http.StatusInternalServerError, `boom`},
		{"malformed json", http.StatusOK, `{"status": "OK", "routes": [`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.payload))
			}))
			defer server.Close()

			client := newTestClient(server)
			if _, err := client.GetDirections(context.Background(), Coordinate{}, Coordinate{}, "driving"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
