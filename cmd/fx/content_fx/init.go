package content_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"locallens/internal/repositories"
	"locallens/internal/services"
	mem "locallens/pkg/memcache"
)

var Module = fx.Provide(
	provideStoryCache,
	provideContentRepo,
	provideContentService)

func provideStoryCache() mem.StoryCache {
	return mem.NewStoryCache()
}

func provideContentRepo(db *gorm.DB) repositories.ContentRepository {
	return repositories.NewContentRepository(db)
}

func provideContentService(repo repositories.ContentRepository, cache mem.StoryCache) services.ContentServiceInterface {
	return services.NewContentService(repo, cache)
}
