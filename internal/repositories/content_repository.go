package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"locallens/internal/models/db_models"
)

type ContentRepository interface {
	GetStoriesByLocation(ctx context.Context, location string) ([]db_models.LocalStory, error)
	GetStoryByID(ctx context.Context, id string) (*db_models.LocalStory, error)
	GetStoryByPlaceID(ctx context.Context, placeID string) (*db_models.LocalStory, error)
	CreateStory(ctx context.Context, story *db_models.LocalStory) error

	GetRecommendationsByLocation(ctx context.Context, location string) ([]db_models.LocalRecommendation, error)
	CreateRecommendation(ctx context.Context, rec *db_models.LocalRecommendation) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) GetStoriesByLocation(ctx context.Context, location string) ([]db_models.LocalStory, error) {
	var stories []db_models.LocalStory
	err := r.db.WithContext(ctx).
		Where("LOWER(location) = LOWER(?)", location).
		Find(&stories).Error
	if err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *contentRepository) GetStoryByID(ctx context.Context, id string) (*db_models.LocalStory, error) {
	var story db_models.LocalStory
	err := r.db.WithContext(ctx).First(&story, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}

func (r *contentRepository) GetStoryByPlaceID(ctx context.Context, placeID string) (*db_models.LocalStory, error) {
	var story db_models.LocalStory
	err := r.db.WithContext(ctx).First(&story, "place_id = ?", placeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}

func (r *contentRepository) CreateStory(ctx context.Context, story *db_models.LocalStory) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *contentRepository) GetRecommendationsByLocation(ctx context.Context, location string) ([]db_models.LocalRecommendation, error) {
	var recs []db_models.LocalRecommendation
	err := r.db.WithContext(ctx).
		Where("LOWER(location) = LOWER(?)", location).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *contentRepository) CreateRecommendation(ctx context.Context, rec *db_models.LocalRecommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}
