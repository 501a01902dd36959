package services

import (
	"context"

	"locallens/internal/models/response_models"
)

const (
	dayBudgetMinutes     = 480 // 8 hours of sightseeing per day
	dayLoopFloorMinutes  = 60  // below this the day cannot fit another stop
	legReserveMinutes    = 30  // slack left after travel before a visit is viable
	visitDurationMinutes = 90
)

type DaySchedulerInterface interface {
	Schedule(ctx context.Context, candidates []response_models.CandidatePOI, start Coordinate, days int, mode string, stories []response_models.LocalStory) []response_models.DailyPlan
}

type DayScheduler struct {
	estimator TransportEstimatorInterface
}

func NewDayScheduler(estimator TransportEstimatorInterface) DaySchedulerInterface {
	return &DayScheduler{estimator: estimator}
}

// Schedule packs ranked candidates into up to days daily plans. A single
// cursor walks the candidate slice once: accepted and discarded candidates
// both consume it, while a day running out of room leaves the candidate for
// the next day. The travelling position carries across day boundaries.
func (s *DayScheduler) Schedule(ctx context.Context, candidates []response_models.CandidatePOI, start Coordinate, days int, mode string, stories []response_models.LocalStory) []response_models.DailyPlan {
	plans := make([]response_models.DailyPlan, 0, days)
	cursor := 0
	position := start

	for day := 1; day <= days && cursor < len(candidates); day++ {
		budget := dayBudgetMinutes
		activities := []response_models.Activity{}

		for cursor < len(candidates) && budget > dayLoopFloorMinutes {
			candidate := candidates[cursor]
			transport := s.estimator.Estimate(ctx, position, Coordinate{Lat: candidate.Latitude, Lng: candidate.Longitude}, mode)

			if budget-transport.TravelTimeMinutes <= legReserveMinutes {
				// Day is full; the candidate stays for tomorrow.
				break
			}
			if budget-transport.TravelTimeMinutes-visitDurationMinutes < 0 {
				cursor++
				continue
			}

			activities = append(activities, buildActivity(candidate, transport, stories))
			budget -= transport.TravelTimeMinutes + visitDurationMinutes
			position = Coordinate{Lat: candidate.Latitude, Lng: candidate.Longitude}
			cursor++
		}

		if len(activities) > 0 {
			plans = append(plans, response_models.DailyPlan{
				DayNumber:  day,
				Activities: activities,
			})
		}
	}
	return plans
}

func buildActivity(candidate response_models.CandidatePOI, transport response_models.TransportDetails, stories []response_models.LocalStory) response_models.Activity {
	category := "point_of_interest"
	if len(candidate.Types) > 0 {
		category = candidate.Types[0]
	}

	activity := response_models.Activity{
		PlaceID:    candidate.ID,
		Name:       candidate.Name,
		Latitude:   candidate.Latitude,
		Longitude:  candidate.Longitude,
		Category:   category,
		HowToReach: &transport,
	}

	for _, story := range stories {
		if story.PlaceID == candidate.ID {
			id := story.ID
			activity.LocalStoryID = &id
			activity.AudioGuideID = &id
			break
		}
	}
	return activity
}
