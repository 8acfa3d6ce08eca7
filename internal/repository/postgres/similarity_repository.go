package postgres

import (
	"context"
	"fmt"
	"math"

	"shopperSpectrum/business/artifact"
	"shopperSpectrum/domain"

	"gorm.io/gorm"
)

type SimilarityRepository struct {
	DB *gorm.DB
}

var _ artifact.SimilaritySource = (*SimilarityRepository)(nil)

func NewSimilarityRepository(db *gorm.DB) *SimilarityRepository {
	return &SimilarityRepository{
		DB: db,
	}
}

// LoadSimilarity reads every (product, neighbor, score) pair and pivots it
// into a square table. Pairs absent from the table become NaN scores.
func (r *SimilarityRepository) LoadSimilarity(ctx context.Context) (*artifact.SimilarityTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var pairs []domain.ProductSimilarity
	if err := r.DB.WithContext(ctx).
		Order("product ASC").
		Order("neighbor ASC").
		Find(&pairs).Error; err != nil {
		return nil, fmt.Errorf("failed to query product_similarities: %w", err)
	}

	return pivotPairs(pairs)
}

func pivotPairs(pairs []domain.ProductSimilarity) (*artifact.SimilarityTable, error) {
	index := make(map[string]int)
	var products []string
	add := func(name string) {
		if _, ok := index[name]; !ok {
			index[name] = len(products)
			products = append(products, name)
		}
	}
	for _, p := range pairs {
		add(p.Product)
		add(p.Neighbor)
	}

	scores := make([][]float64, len(products))
	for i := range scores {
		row := make([]float64, len(products))
		for j := range row {
			row[j] = math.NaN()
		}
		scores[i] = row
	}
	for _, p := range pairs {
		scores[index[p.Product]][index[p.Neighbor]] = p.Score
	}

	return artifact.NewSimilarityTable(products, products, scores)
}
