package db_models

import "github.com/lib/pq"

type POI struct {
	BaseModel
	Name        string
	Latitude    float64
	Longitude   float64
	Address     string
	Location    string `gorm:"index"` // planning location, e.g. "Visakhapatnam"
	Rating      *float64
	RatingCount *int
	Tags        pq.StringArray `gorm:"type:text[]"`
}
