package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserPreferences is a single row per account, replaced wholesale on save.
type UserPreferences struct {
	BaseModel
	AccountID              uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	TravelStyles           pq.StringArray `gorm:"type:text[]"`
	Interests              pq.StringArray `gorm:"type:text[]"`
	FoodPreferences        pq.StringArray `gorm:"type:text[]"`
	Budget                 string
	Pacing                 string
	PreferredTransportMode string `gorm:"default:driving"`
}
