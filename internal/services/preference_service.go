package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"locallens/internal/models/db_models"
	"locallens/internal/models/request_models"
	"locallens/internal/models/response_models"
	"locallens/internal/repositories"
	"locallens/pkg/utils"
)

type PreferenceServiceInterface interface {
	SavePreferences(ctx context.Context, userID string, req request_models.SavePreferencesRequest) error
	GetPreferences(ctx context.Context, userID string) (*response_models.UserPreferences, error)
	// GetPreferencesForPlanning differs from GetPreferences: planning requires
	// saved answers and fails with ErrPreferencesNotSet when there are none.
	GetPreferencesForPlanning(ctx context.Context, userID string) (*response_models.UserPreferences, error)
}

type PreferenceService struct {
	repo repositories.PreferenceRepository
}

func NewPreferenceService(repo repositories.PreferenceRepository) PreferenceServiceInterface {
	return &PreferenceService{repo: repo}
}

func (s *PreferenceService) SavePreferences(ctx context.Context, userID string, req request_models.SavePreferencesRequest) error {
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	mode := req.PreferredTransportMode
	if mode == "" {
		mode = "driving"
	}

	prefs := &db_models.UserPreferences{
		AccountID:              accountID,
		TravelStyles:           req.TravelStyles,
		Interests:              req.Interests,
		FoodPreferences:        req.FoodPreferences,
		Budget:                 req.Budget,
		Pacing:                 req.Pacing,
		PreferredTransportMode: mode,
	}

	if err := s.repo.Upsert(ctx, prefs); err != nil {
		log.Printf("failed to save preferences for user %s: %v", userID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PreferenceService) GetPreferences(ctx context.Context, userID string) (*response_models.UserPreferences, error) {
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	prefs, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prefs == nil {
		// Never saved: hand back an empty set so the client can render the
		// onboarding questionnaire.
		return &response_models.UserPreferences{
			UserID:                 userID,
			TravelStyles:           []string{},
			Interests:              []string{},
			FoodPreferences:        []string{},
			PreferredTransportMode: "driving",
		}, nil
	}

	return mapPreferences(userID, prefs), nil
}

func (s *PreferenceService) GetPreferencesForPlanning(ctx context.Context, userID string) (*response_models.UserPreferences, error) {
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	prefs, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prefs == nil {
		return nil, utils.ErrPreferencesNotSet
	}

	return mapPreferences(userID, prefs), nil
}

func mapPreferences(userID string, prefs *db_models.UserPreferences) *response_models.UserPreferences {
	return &response_models.UserPreferences{
		UserID:                 userID,
		TravelStyles:           prefs.TravelStyles,
		Interests:              prefs.Interests,
		FoodPreferences:        prefs.FoodPreferences,
		Budget:                 prefs.Budget,
		Pacing:                 prefs.Pacing,
		PreferredTransportMode: prefs.PreferredTransportMode,
	}
}
