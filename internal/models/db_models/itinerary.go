package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Itinerary keeps the generated plan materialized as day and activity rows.
// The ID is assigned by the planner (accountID_unixMillis), not by a hook.
type Itinerary struct {
	ID        string `gorm:"primaryKey"`
	AccountID uuid.UUID
	Date      string // generation date, yyyy-MM-dd
	CreatedAt int64  `gorm:"autoCreateTime"`

	Days []ItineraryDay `gorm:"foreignKey:ItineraryID"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID string `gorm:"index"`
	DayNumber   int

	Activities []ItineraryActivity `gorm:"foreignKey:ItineraryDayID"`
}

type ItineraryActivity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"type:uuid;index"`
	Position       int
	PlaceID        string
	Name           string
	Latitude       float64
	Longitude      float64
	Category       string
	StartTime      *string
	EndTime        *string
	LocalStoryID   *string
	AudioGuideID   *string
	// Transport holds the serialized TransportDetails for the leg into this stop.
	Transport datatypes.JSON `gorm:"type:jsonb"`
}
