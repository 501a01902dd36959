package response_models

type LocalStory struct {
	ID          string  `json:"id"`
	PlaceID     string  `json:"place_id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"image_url,omitempty"`
	AudioURL    *string `json:"audio_url,omitempty"`
	Location    string  `json:"location"`
	FactChecked bool    `json:"fact_checked"`
}

type LocalRecommendation struct {
	ID            string  `json:"id"`
	PlaceID       string  `json:"place_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	RecommendedBy string  `json:"recommended_by"`
	ImageURL      *string `json:"image_url,omitempty"`
}
