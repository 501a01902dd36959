package preferences_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"locallens/internal/repositories"
	"locallens/internal/services"
)

var Module = fx.Provide(providePreferenceRepo, providePreferenceService)

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func providePreferenceService(repo repositories.PreferenceRepository) services.PreferenceServiceInterface {
	return services.NewPreferenceService(repo)
}
