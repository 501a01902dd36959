package response_models

// UserPreferences is the planning view of an account's saved settings.
// A user who has never saved preferences gets the zero value with their id.
type UserPreferences struct {
	UserID                 string   `json:"user_id"`
	TravelStyles           []string `json:"travel_styles"`
	Interests              []string `json:"interests"`
	FoodPreferences        []string `json:"food_preferences"`
	Budget                 string   `json:"budget"`
	Pacing                 string   `json:"pacing"`
	PreferredTransportMode string   `json:"preferred_transport_mode"`
}
