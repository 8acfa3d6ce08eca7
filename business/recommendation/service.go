package recommendation

import (
	"context"
	"fmt"
	"time"

	"shopperSpectrum/business/artifact"
	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"
	"shopperSpectrum/pkg/metrics"
)

// DefaultTopN is used when the caller does not ask for a result count.
const DefaultTopN = 5

type SimilarityTable interface {
	Nearest(product string, n int) ([]artifact.Neighbor, bool)
	Products() []string
}

type Service struct {
	table       SimilarityTable
	defaultTopN int
}

func NewService(table SimilarityTable, defaultTopN int) *Service {
	if defaultTopN <= 0 {
		defaultTopN = DefaultTopN
	}
	return &Service{
		table:       table,
		defaultTopN: defaultTopN,
	}
}

// GetSimilarProducts returns the names of the topN products most similar to
// productName. The name must match exactly. Unknown products return
// domain.ErrProductNotFound.
func (s *Service) GetSimilarProducts(ctx context.Context, productName string, topN int) ([]string, error) {
	neighbors, err := s.nearest(ctx, productName, topN)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.Product
	}
	return out, nil
}

// Recommend is GetSimilarProducts with rank and score attached.
func (s *Service) Recommend(ctx context.Context, productName string, topN int) ([]domain.ProductRecommendation, error) {
	neighbors, err := s.nearest(ctx, productName, topN)
	if err != nil {
		return nil, err
	}

	recs := make([]domain.ProductRecommendation, 0, len(neighbors))
	for i, n := range neighbors {
		recs = append(recs, domain.ProductRecommendation{
			Rank:        i + 1,
			ProductName: n.Product,
			Score:       n.Score,
		})
	}
	return recs, nil
}

func (s *Service) Products(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.table.Products(), nil
}

func (s *Service) nearest(ctx context.Context, productName string, topN int) ([]artifact.Neighbor, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get similar products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if topN <= 0 {
		topN = s.defaultTopN
	}

	start := time.Now()
	neighbors, ok := s.table.Nearest(productName, topN)
	metrics.SimilarLookupDuration.Observe(time.Since(start).Seconds())

	if !ok {
		metrics.SimilarLookups.WithLabelValues("not_found").Inc()
		logger.Debug("product not in similarity table", "product", productName)
		return nil, domain.ErrProductNotFound
	}

	metrics.SimilarLookups.WithLabelValues("found").Inc()
	return neighbors, nil
}
