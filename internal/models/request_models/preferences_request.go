package request_models

type SavePreferencesRequest struct {
	TravelStyles           []string `json:"travel_styles"`
	Interests              []string `json:"interests"`
	FoodPreferences        []string `json:"food_preferences"`
	Budget                 string   `json:"budget" binding:"omitempty,oneof=Low Medium High"`
	Pacing                 string   `json:"pacing" binding:"omitempty,oneof=Relaxed Moderate Packed"`
	PreferredTransportMode string   `json:"preferred_transport_mode" binding:"omitempty,oneof=driving walking transit auto_rickshaw"`
}
