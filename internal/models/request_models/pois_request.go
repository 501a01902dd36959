package request_models

type CreatePoiRequest struct {
	Name        string   `json:"name" binding:"required"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Address     string   `json:"address"`
	Location    string   `json:"location" binding:"required"`
	Rating      *float64 `json:"rating"`
	RatingCount *int     `json:"rating_count"`
	Tags        []string `json:"tags"`
}

type SearchPoiRequest struct {
	Query    string `json:"query" binding:"required,min=3"`
	Location string `json:"location"`
}
