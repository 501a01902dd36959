// cmd/fx/pois_fx/module.go
package pois_fx

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"locallens/internal/repositories"
	"locallens/internal/services"
	"locallens/pkg/utils"
)

var Module = fx.Provide(
	providePoiRepo,
	providePoiEmbeddingRepo,
	ProvideEmbeddingClient,
	ProvidePlaceSuggester,
	providePoiService)

func providePoiRepo(db *gorm.DB) repositories.POIRepository {
	return repositories.NewPOIRepository(db)
}

func providePoiEmbeddingRepo(db *gorm.DB) repositories.PoiEmbeddingRepository {
	return repositories.NewPoiEmbeddingRepository(db)
}

// ProvideEmbeddingClient creates the OpenAI embedding client used for
// semantic POI search.
func ProvideEmbeddingClient() (utils.EmbeddingClientInterface, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for semantic search")
	}
	return utils.NewOpenAIEmbeddingClient(apiKey), nil
}

// ProvidePlaceSuggester creates the Gemini-backed fallback used when the POI
// catalog has nothing for a planning location.
func ProvidePlaceSuggester() (utils.PlaceSuggesterInterface, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required for the place suggester")
	}
	model := getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
	return utils.NewGeminiPlaceSuggester(apiKey, model)
}

func providePoiService(
	poiRepo repositories.POIRepository,
	embeddingRepo repositories.PoiEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	suggester utils.PlaceSuggesterInterface,
) services.POIServiceInterface {
	return services.NewPOIService(poiRepo, embeddingRepo, embedder, suggester)
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
