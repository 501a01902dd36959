package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"locallens/internal/models/db_models"
)

type PoiEmbeddingRepository interface {
	SearchByVector(ctx context.Context, vector pgvector.Vector, location string) ([]db_models.PoiEmbedding, error)
	Create(ctx context.Context, embedding db_models.PoiEmbedding) error
}

type poiEmbeddingRepository struct {
	db *gorm.DB
}

func NewPoiEmbeddingRepository(db *gorm.DB) PoiEmbeddingRepository {
	return &poiEmbeddingRepository{db: db}
}

func (p *poiEmbeddingRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, location string) ([]db_models.PoiEmbedding, error) {
	var results []db_models.PoiEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM poi_embeddings
        WHERE LOWER(location) = LOWER($2)
          AND (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 15
    `

	err := p.db.WithContext(ctx).Raw(query, vecStr, location).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (p *poiEmbeddingRepository) Create(ctx context.Context, embedding db_models.PoiEmbedding) error {
	return p.db.WithContext(ctx).Create(&embedding).Error
}
