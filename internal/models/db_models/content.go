package db_models

type LocalStory struct {
	BaseModel
	PlaceID     string `gorm:"index"`
	Title       string
	Content     string
	ImageURL    *string
	AudioURL    *string
	Location    string `gorm:"index"`
	FactChecked bool   `gorm:"default:false"`
}

type LocalRecommendation struct {
	BaseModel
	PlaceID       string `gorm:"index"`
	Name          string
	Category      string
	Description   string
	Location      string `gorm:"index"`
	RecommendedBy string
	ImageURL      *string
}
