package file

import (
	"context"
	"fmt"

	"shopperSpectrum/business/artifact"

	"github.com/goccy/go-json"
)

// ScalerRepository reads fitted standard-scaler parameters:
//
//	{"mean_": [r, f, m], "scale_": [r, f, m]}
type ScalerRepository struct {
	path string
}

var _ artifact.ScalerSource = (*ScalerRepository)(nil)

func NewScalerRepository(path string) *ScalerRepository {
	return &ScalerRepository{path: path}
}

type scalerFile struct {
	Mean  []float64 `json:"mean_"`
	Scale []float64 `json:"scale_"`
}

func (r *ScalerRepository) LoadScaler(ctx context.Context) (artifact.Scaler, error) {
	var f scalerFile
	if err := decodeJSON(ctx, r.path, &f); err != nil {
		return nil, err
	}

	return artifact.NewStandardScaler(f.Mean, f.Scale)
}

// ModelRepository reads fitted k-means centroids:
//
//	{"cluster_centers_": [[r, f, m], ...]}
type ModelRepository struct {
	path string
}

var _ artifact.ModelSource = (*ModelRepository)(nil)

func NewModelRepository(path string) *ModelRepository {
	return &ModelRepository{path: path}
}

type kmeansFile struct {
	Centers [][]float64 `json:"cluster_centers_"`
}

func (r *ModelRepository) LoadModel(ctx context.Context) (artifact.ClusterModel, error) {
	var f kmeansFile
	if err := decodeJSON(ctx, r.path, &f); err != nil {
		return nil, err
	}

	return artifact.NewKMeans(f.Centers)
}

func decodeJSON(ctx context.Context, path string, v any) error {
	data, ext, err := readArtifact(ctx, path)
	if err != nil {
		return err
	}
	if ext != ".json" {
		return fmt.Errorf("unsupported artifact format %q for %s", ext, path)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
