package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"locallens/internal/models/db_models"
	"locallens/internal/models/request_models"
	"locallens/internal/models/response_models"
	"locallens/internal/repositories"
	"locallens/pkg/utils"
)

type POIServiceInterface interface {
	GetPOIById(id string, ctx context.Context) (response_models.CandidatePOI, error)
	GetCandidatesByLocation(ctx context.Context, location string, prefs response_models.UserPreferences) ([]response_models.CandidatePOI, error)
	SearchPois(ctx context.Context, req request_models.SearchPoiRequest) ([]response_models.CandidatePOI, error)
	CreatePoi(ctx context.Context, req request_models.CreatePoiRequest) error
	DeletePoi(id uuid.UUID, ctx context.Context) error
	ListPois(ctx context.Context, page, pageSize int) ([]response_models.CandidatePOI, error)
}

type PoiService struct {
	poiRepository repositories.POIRepository
	embeddingRepo repositories.PoiEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
	suggester     utils.PlaceSuggesterInterface
}

func NewPOIService(
	poiRepository repositories.POIRepository,
	embeddingRepo repositories.PoiEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	suggester utils.PlaceSuggesterInterface,
) POIServiceInterface {
	return &PoiService{
		poiRepository: poiRepository,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		suggester:     suggester,
	}
}

// GetCandidatesByLocation reads the catalog for a planning location and falls
// back to the LLM suggester when the catalog has nothing stored there.
func (p *PoiService) GetCandidatesByLocation(ctx context.Context, location string, prefs response_models.UserPreferences) ([]response_models.CandidatePOI, error) {
	pois, err := p.poiRepository.ListByLocation(ctx, location)
	if err != nil {
		log.Printf("Error listing POIs for %s: %v", location, err)
		return nil, utils.ErrDatabaseError
	}

	if len(pois) > 0 {
		out := make([]response_models.CandidatePOI, 0, len(pois))
		for _, poi := range pois {
			out = append(out, mapCandidate(&poi))
		}
		return out, nil
	}

	suggested, err := p.suggester.SuggestPlaces(ctx, location, prefs)
	if err != nil {
		log.Printf("Place suggester failed for %s: %v", location, err)
		return []response_models.CandidatePOI{}, nil
	}
	return suggested, nil
}

// SearchPois embeds the free-text query and matches it against the POI
// embedding table by cosine similarity.
func (p *PoiService) SearchPois(ctx context.Context, req request_models.SearchPoiRequest) ([]response_models.CandidatePOI, error) {
	vector, err := p.embedder.GetEmbedding(ctx, req.Query)
	if err != nil {
		log.Printf("Error embedding search query: %v", err)
		return nil, utils.ErrInvalidInput
	}

	matches, err := p.embeddingRepo.SearchByVector(ctx, vector, req.Location)
	if err != nil {
		log.Printf("Error searching POI embeddings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.CandidatePOI, 0, len(matches))
	for _, match := range matches {
		poi, err := p.poiRepository.GetByID(ctx, match.PoiID)
		if err != nil || poi == nil {
			continue
		}
		results = append(results, mapCandidate(poi))
	}
	return results, nil
}

func (p *PoiService) ListPois(ctx context.Context, page, pageSize int) ([]response_models.CandidatePOI, error) {

	pois, err := p.poiRepository.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing POIs: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CandidatePOI, 0, len(pois))
	for _, poi := range pois {
		out = append(out, mapCandidate(&poi))
	}
	return out, nil
}

func (p *PoiService) DeletePoi(id uuid.UUID, ctx context.Context) error {

	existingPOI, err := p.poiRepository.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching POI: %v", err)
		return utils.ErrDatabaseError
	}

	if existingPOI == nil {
		return utils.ErrPOINotFound
	}

	if err := p.poiRepository.Delete(ctx, id); err != nil {
		log.Printf("Error deleting POI: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *PoiService) CreatePoi(ctx context.Context, req request_models.CreatePoiRequest) error {

	newPOI := &db_models.POI{
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		Location:    strings.ToLower(strings.TrimSpace(req.Location)),
		Rating:      req.Rating,
		RatingCount: req.RatingCount,
		Tags:        req.Tags,
	}

	id, err := p.poiRepository.CreatePoi(ctx, newPOI)
	if err != nil {
		log.Printf("Error creating POI: %v", err)
		return utils.ErrDatabaseError
	}

	// Index for semantic search. A failed embedding never blocks the create.
	text := fmt.Sprintf("%s. %s. %s", req.Name, strings.Join(req.Tags, ", "), req.Address)
	vector, err := p.embedder.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("Error embedding POI %s: %v", id, err)
		return nil
	}
	if err := p.embeddingRepo.Create(ctx, db_models.PoiEmbedding{
		PoiID:     id.String(),
		Name:      req.Name,
		Location:  newPOI.Location,
		Tags:      req.Tags,
		Embedding: vector,
	}); err != nil {
		log.Printf("Error storing POI embedding %s: %v", id, err)
	}

	return nil
}

func (p *PoiService) GetPOIById(id string, ctx context.Context) (response_models.CandidatePOI, error) {
	poi, err := p.poiRepository.GetByID(ctx, id)
	if err != nil {
		return response_models.CandidatePOI{}, utils.ErrDatabaseError
	}

	if poi == nil {
		return response_models.CandidatePOI{}, utils.ErrPOINotFound
	}

	return mapCandidate(poi), nil
}

func mapCandidate(poi *db_models.POI) response_models.CandidatePOI {
	return response_models.CandidatePOI{
		ID:          poi.ID.String(),
		Name:        poi.Name,
		Latitude:    poi.Latitude,
		Longitude:   poi.Longitude,
		Address:     poi.Address,
		Rating:      poi.Rating,
		RatingCount: poi.RatingCount,
		Types:       poi.Tags,
	}
}
