package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"locallens/internal/models/db_models"
)

type PreferenceRepository interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.UserPreferences, error)
	Upsert(ctx context.Context, prefs *db_models.UserPreferences) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.UserPreferences, error) {
	var prefs db_models.UserPreferences
	err := r.db.WithContext(ctx).
		First(&prefs, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

// Upsert keeps one preference row per account; a repeat save overwrites the
// previous answers wholesale.
func (r *preferenceRepository) Upsert(ctx context.Context, prefs *db_models.UserPreferences) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			UpdateAll: true,
		}).
		Create(prefs).Error
}
