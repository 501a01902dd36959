package request_models

type GenerateItineraryRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
	Days      int     `json:"days" binding:"omitempty,min=1,max=14"`
	Location  string  `json:"location" binding:"required"`
}
