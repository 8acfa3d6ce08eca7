package loader

import (
	"context"
	"fmt"
	"time"

	"shopperSpectrum/business/artifact"
	"shopperSpectrum/internal/repository/file"
	psqlRepo "shopperSpectrum/internal/repository/postgres"
	"shopperSpectrum/pkg/config"
	"shopperSpectrum/pkg/database"
	"shopperSpectrum/pkg/logger"
)

const loadTimeout = 2 * time.Minute

// LoadStore reads the three artifacts named by cfg. A postgres similarity
// source is connected, read and closed again before returning.
func LoadStore(ctx context.Context, cfg *config.Config) (*artifact.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	src := artifact.Sources{
		Scaler: file.NewScalerRepository(cfg.Artifacts.ScalerPath),
		Model:  file.NewModelRepository(cfg.Artifacts.ModelPath),
	}

	switch cfg.Artifacts.SimilaritySource {
	case config.SimilaritySourcePostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				logger.Warn("Failed to close database", "error", err)
			}
		}()
		src.Similarity = psqlRepo.NewSimilarityRepository(db)
	case config.SimilaritySourceFile:
		src.Similarity = file.NewSimilarityRepository(cfg.Artifacts.SimilarityPath)
	default:
		return nil, fmt.Errorf("unknown similarity source %q", cfg.Artifacts.SimilaritySource)
	}

	start := time.Now()
	store, err := artifact.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	logger.Info("Artifacts loaded",
		"similarity_source", cfg.Artifacts.SimilaritySource,
		"products", store.Similarity.Len(),
		"clusters", store.Model.NumClusters(),
		"elapsed", time.Since(start).String(),
	)

	return store, nil
}
