package response_models

// CandidatePOI is a place considered for scheduling. Rating and RatingCount
// are nil when the source did not report them.
type CandidatePOI struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating"`
	RatingCount *int     `json:"rating_count"`
	Types       []string `json:"types"`
}
