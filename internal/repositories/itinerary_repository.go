// internal/repositories/itinerary_repo.go
package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "locallens/internal/models/db_models"
	resp "locallens/internal/models/response_models"
)

type ItineraryRepository interface {
	ReplaceItinerary(ctx context.Context, accountID uuid.UUID, itinerary *resp.Itinerary) error
	GetLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*resp.Itinerary, error)
	GetByID(ctx context.Context, id string) (*resp.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// ReplaceItinerary stores a freshly generated plan. Each account keeps a
// single materialized itinerary, so any previous rows are wiped first.
func (r *itineraryRepository) ReplaceItinerary(
	ctx context.Context,
	accountID uuid.UUID,
	itinerary *resp.Itinerary,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// 1) Wipe previous materialized data for this account
		subItineraryIDs := tx.Model(&dbm.Itinerary{}).
			Select("id").
			Where("account_id = ?", accountID)

		subDayIDs := tx.Model(&dbm.ItineraryDay{}).
			Select("id").
			Where("itinerary_id IN (?)", subItineraryIDs)

		if err := tx.Where("itinerary_day_id IN (?)", subDayIDs).
			Delete(&dbm.ItineraryActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id IN (?)", subItineraryIDs).
			Delete(&dbm.ItineraryDay{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", accountID).
			Delete(&dbm.Itinerary{}).Error; err != nil {
			return err
		}

		// 2) Create the itinerary + days + activities
		row := dbm.Itinerary{
			ID:        itinerary.ID,
			AccountID: accountID,
			Date:      itinerary.Date,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		for _, d := range itinerary.Days {
			day := dbm.ItineraryDay{
				ItineraryID: row.ID,
				DayNumber:   d.DayNumber,
			}
			if err := tx.Create(&day).Error; err != nil {
				return err
			}

			acts := make([]dbm.ItineraryActivity, 0, len(d.Activities))
			for pos, a := range d.Activities {
				var transport []byte
				if a.HowToReach != nil {
					raw, err := json.Marshal(a.HowToReach)
					if err != nil {
						return err
					}
					transport = raw
				}

				acts = append(acts, dbm.ItineraryActivity{
					ItineraryDayID: day.ID,
					Position:       pos,
					PlaceID:        a.PlaceID,
					Name:           a.Name,
					Latitude:       a.Latitude,
					Longitude:      a.Longitude,
					Category:       a.Category,
					StartTime:      a.StartTime,
					EndTime:        a.EndTime,
					LocalStoryID:   a.LocalStoryID,
					AudioGuideID:   a.AudioGuideID,
					Transport:      transport,
				})
			}
			if len(acts) > 0 {
				if err := tx.Create(&acts).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (r *itineraryRepository) GetLatestByAccountID(ctx context.Context, accountID uuid.UUID) (*resp.Itinerary, error) {
	var row dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapItinerary(&row), nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*resp.Itinerary, error) {
	var row dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapItinerary(&row), nil
}

func mapItinerary(row *dbm.Itinerary) *resp.Itinerary {
	out := &resp.Itinerary{
		ID:     row.ID,
		UserID: row.AccountID.String(),
		Date:   row.Date,
		Days:   make([]resp.DailyPlan, 0, len(row.Days)),
	}

	for _, d := range row.Days {
		day := resp.DailyPlan{
			DayNumber:  d.DayNumber,
			Activities: make([]resp.Activity, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			act := resp.Activity{
				PlaceID:      a.PlaceID,
				Name:         a.Name,
				Latitude:     a.Latitude,
				Longitude:    a.Longitude,
				Category:     a.Category,
				StartTime:    a.StartTime,
				EndTime:      a.EndTime,
				LocalStoryID: a.LocalStoryID,
				AudioGuideID: a.AudioGuideID,
			}
			if len(a.Transport) > 0 {
				var transport resp.TransportDetails
				if err := json.Unmarshal(a.Transport, &transport); err == nil {
					act.HowToReach = &transport
				}
			}
			day.Activities = append(day.Activities, act)
		}
		out.Days = append(out.Days, day)
	}
	return out
}
