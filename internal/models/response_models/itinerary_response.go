package response_models

// Itinerary is the fully assembled plan handed back to the client and
// materialized by the itinerary repository.
type Itinerary struct {
	ID     string      `json:"id"`
	UserID string      `json:"user_id"`
	Date   string      `json:"date"`
	Days   []DailyPlan `json:"days"`
}

type DailyPlan struct {
	DayNumber  int        `json:"day_number"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	PlaceID      string            `json:"place_id"`
	Name         string            `json:"name"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Category     string            `json:"category"`
	StartTime    *string           `json:"start_time,omitempty"`
	EndTime      *string           `json:"end_time,omitempty"`
	LocalStoryID *string           `json:"local_story_id,omitempty"`
	AudioGuideID *string           `json:"audio_guide_id,omitempty"`
	HowToReach   *TransportDetails `json:"how_to_reach,omitempty"`
}

type TransportDetails struct {
	Mode              string        `json:"mode"`
	TravelTimeMinutes int           `json:"travel_time_minutes"`
	DistanceKm        float64       `json:"distance_km"`
	FareEstimateINR   float64       `json:"fare_estimate_inr"`
	TransitSteps      []TransitStep `json:"transit_steps,omitempty"`
	Polyline          string        `json:"polyline,omitempty"`
}

type TransitStep struct {
	Instruction     string  `json:"instruction"`
	TravelMode      string  `json:"travel_mode"`
	LineName        *string `json:"line_name,omitempty"`
	DepartureStop   *string `json:"departure_stop,omitempty"`
	ArrivalStop     *string `json:"arrival_stop,omitempty"`
	DepartureTime   *string `json:"departure_time,omitempty"`
	ArrivalTime     *string `json:"arrival_time,omitempty"`
	NumStops        *int    `json:"num_stops,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
}
