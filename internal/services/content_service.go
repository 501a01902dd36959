package services

import (
	"context"
	"log"
	"strings"
	"time"

	"locallens/internal/models/db_models"
	"locallens/internal/models/response_models"
	"locallens/internal/repositories"
	mem "locallens/pkg/memcache"
	"locallens/pkg/utils"
)

const storyCacheTTL = 10 * time.Minute

type ContentServiceInterface interface {
	GetStoriesByLocation(ctx context.Context, location string) ([]response_models.LocalStory, error)
	GetStoryByID(ctx context.Context, id string) (*response_models.LocalStory, error)
	GetRecommendationsByLocation(ctx context.Context, location string) ([]response_models.LocalRecommendation, error)
	CreateStory(ctx context.Context, story response_models.LocalStory) error
	CreateRecommendation(ctx context.Context, rec response_models.LocalRecommendation) error
}

type ContentService struct {
	repo  repositories.ContentRepository
	cache mem.StoryCache
}

func NewContentService(repo repositories.ContentRepository, cache mem.StoryCache) ContentServiceInterface {
	return &ContentService{repo: repo, cache: cache}
}

func (s *ContentService) GetStoriesByLocation(ctx context.Context, location string) ([]response_models.LocalStory, error) {
	key := strings.ToLower(strings.TrimSpace(location))
	if key == "" {
		return nil, utils.ErrInvalidInput
	}

	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	rows, err := s.repo.GetStoriesByLocation(ctx, key)
	if err != nil {
		log.Printf("failed to load stories for %s: %v", key, err)
		return nil, utils.ErrDatabaseError
	}

	stories := make([]response_models.LocalStory, 0, len(rows))
	for _, row := range rows {
		stories = append(stories, mapStory(&row))
	}

	s.cache.Set(key, stories, storyCacheTTL)
	return stories, nil
}

func (s *ContentService) GetStoryByID(ctx context.Context, id string) (*response_models.LocalStory, error) {
	row, err := s.repo.GetStoryByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrStoryNotFound
	}
	story := mapStory(row)
	return &story, nil
}

func (s *ContentService) GetRecommendationsByLocation(ctx context.Context, location string) ([]response_models.LocalRecommendation, error) {
	key := strings.ToLower(strings.TrimSpace(location))
	if key == "" {
		return nil, utils.ErrInvalidInput
	}

	rows, err := s.repo.GetRecommendationsByLocation(ctx, key)
	if err != nil {
		log.Printf("failed to load recommendations for %s: %v", key, err)
		return nil, utils.ErrDatabaseError
	}

	recs := make([]response_models.LocalRecommendation, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, response_models.LocalRecommendation{
			ID:            row.ID.String(),
			PlaceID:       row.PlaceID,
			Name:          row.Name,
			Category:      row.Category,
			Description:   row.Description,
			Location:      row.Location,
			RecommendedBy: row.RecommendedBy,
			ImageURL:      row.ImageURL,
		})
	}
	return recs, nil
}

func (s *ContentService) CreateStory(ctx context.Context, story response_models.LocalStory) error {
	row := db_models.LocalStory{
		PlaceID:     story.PlaceID,
		Title:       story.Title,
		Content:     story.Content,
		ImageURL:    story.ImageURL,
		AudioURL:    story.AudioURL,
		Location:    strings.ToLower(strings.TrimSpace(story.Location)),
		FactChecked: story.FactChecked,
	}
	if err := s.repo.CreateStory(ctx, &row); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ContentService) CreateRecommendation(ctx context.Context, rec response_models.LocalRecommendation) error {
	row := db_models.LocalRecommendation{
		PlaceID:       rec.PlaceID,
		Name:          rec.Name,
		Category:      rec.Category,
		Description:   rec.Description,
		Location:      strings.ToLower(strings.TrimSpace(rec.Location)),
		RecommendedBy: rec.RecommendedBy,
		ImageURL:      rec.ImageURL,
	}
	if err := s.repo.CreateRecommendation(ctx, &row); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func mapStory(row *db_models.LocalStory) response_models.LocalStory {
	return response_models.LocalStory{
		ID:          row.ID.String(),
		PlaceID:     row.PlaceID,
		Title:       row.Title,
		Content:     row.Content,
		ImageURL:    row.ImageURL,
		AudioURL:    row.AudioURL,
		Location:    row.Location,
		FactChecked: row.FactChecked,
	}
}
