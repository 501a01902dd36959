package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"locallens/internal/models/request_models"
	"locallens/internal/models/response_models"
	"locallens/internal/repositories"
	"locallens/pkg/utils"
)

const defaultTripDays = 1

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, userID string, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error)
	GetCurrentItinerary(ctx context.Context, userID string) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	preferences PreferenceServiceInterface
	content     ContentServiceInterface
	pois        POIServiceInterface
	selector    CandidateSelectorInterface
	scheduler   DaySchedulerInterface
	repo        repositories.ItineraryRepository
}

func NewItineraryService(
	preferences PreferenceServiceInterface,
	content ContentServiceInterface,
	pois POIServiceInterface,
	selector CandidateSelectorInterface,
	scheduler DaySchedulerInterface,
	repo repositories.ItineraryRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		preferences: preferences,
		content:     content,
		pois:        pois,
		selector:    selector,
		scheduler:   scheduler,
		repo:        repo,
	}
}

// GenerateItinerary builds a multi-day plan from the user's saved preferences
// and current position. Preferences are a hard precondition; everything after
// that degrades instead of failing, so the caller always gets an itinerary
// (possibly with zero days).
func (s *ItineraryService) GenerateItinerary(ctx context.Context, userID string, req request_models.GenerateItineraryRequest) (*response_models.Itinerary, error) {
	prefs, err := s.preferences.GetPreferencesForPlanning(ctx, userID)
	if err != nil {
		return nil, err
	}

	stories, err := s.content.GetStoriesByLocation(ctx, req.Location)
	if err != nil {
		log.Printf("stories unavailable for %s: %v", req.Location, err)
		stories = []response_models.LocalStory{}
	}

	candidates, err := s.pois.GetCandidatesByLocation(ctx, req.Location, *prefs)
	if err != nil {
		return nil, err
	}

	days := req.Days
	if days <= 0 {
		days = defaultTripDays
	}

	ranked := s.selector.Select(candidates, prefs.Interests)
	plans := s.scheduler.Schedule(
		ctx,
		ranked,
		Coordinate{Lat: req.Latitude, Lng: req.Longitude},
		days,
		prefs.PreferredTransportMode,
		stories,
	)

	itinerary := &response_models.Itinerary{
		ID:     fmt.Sprintf("%s_%d", userID, utils.NowUnixMillis()),
		UserID: userID,
		Date:   utils.TodayIST(),
		Days:   plans,
	}

	s.persistAsync(userID, itinerary)

	return itinerary, nil
}

// persistAsync saves in the background. Generation already succeeded from the
// caller's point of view, so a storage failure is only logged.
func (s *ItineraryService) persistAsync(userID string, itinerary *response_models.Itinerary) {
	accountID, err := uuid.Parse(userID)
	if err != nil {
		log.Printf("skip persisting itinerary %s: bad account id: %v", itinerary.ID, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.repo.ReplaceItinerary(ctx, accountID, itinerary); err != nil {
			log.Printf("failed to persist itinerary %s: %v", itinerary.ID, err)
		}
	}()
}

func (s *ItineraryService) GetCurrentItinerary(ctx context.Context, userID string) (*response_models.Itinerary, error) {
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itinerary, err := s.repo.GetLatestByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}
