package artifact

import (
	"context"
	"errors"
	"fmt"
)

// Store holds the three fitted artifacts. It is read-only after Load and
// safe for concurrent readers.
type Store struct {
	Similarity *SimilarityTable
	Scaler     Scaler
	Model      ClusterModel
}

type SimilaritySource interface {
	LoadSimilarity(ctx context.Context) (*SimilarityTable, error)
}

type ScalerSource interface {
	LoadScaler(ctx context.Context) (Scaler, error)
}

type ModelSource interface {
	LoadModel(ctx context.Context) (ClusterModel, error)
}

type Sources struct {
	Similarity SimilaritySource
	Scaler     ScalerSource
	Model      ModelSource
}

// Load reads every artifact once. Any failure means the process cannot serve.
func Load(ctx context.Context, src Sources) (*Store, error) {
	if src.Similarity == nil || src.Scaler == nil || src.Model == nil {
		return nil, errors.New("artifact sources are incomplete")
	}

	table, err := src.Similarity.LoadSimilarity(ctx)
	if err != nil {
		return nil, fmt.Errorf("load similarity table: %w", err)
	}

	scaler, err := src.Scaler.LoadScaler(ctx)
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}

	model, err := src.Model.LoadModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cluster model: %w", err)
	}

	if table == nil || scaler == nil || model == nil {
		return nil, errors.New("artifact source returned no artifact")
	}

	return &Store{
		Similarity: table,
		Scaler:     scaler,
		Model:      model,
	}, nil
}
