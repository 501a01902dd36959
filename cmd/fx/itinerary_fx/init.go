package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"locallens/internal/repositories"
	"locallens/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideSelector,
	provideScheduler,
	provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideSelector() services.CandidateSelectorInterface {
	return services.NewCandidateSelector()
}

func provideScheduler(estimator services.TransportEstimatorInterface) services.DaySchedulerInterface {
	return services.NewDayScheduler(estimator)
}

func provideItineraryService(
	preferences services.PreferenceServiceInterface,
	content services.ContentServiceInterface,
	pois services.POIServiceInterface,
	selector services.CandidateSelectorInterface,
	scheduler services.DaySchedulerInterface,
	repo repositories.ItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(preferences, content, pois, selector, scheduler, repo)
}
