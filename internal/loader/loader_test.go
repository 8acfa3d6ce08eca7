//go:build !integration

package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shopperSpectrum/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifacts(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
		return path
	}

	return &config.Config{
		Artifacts: config.ArtifactConfig{
			SimilaritySource: config.SimilaritySourceFile,
			SimilarityPath:   write("sim.csv", ",A,B\nA,1,0.5\nB,0.5,1\n"),
			ScalerPath:       write("scaler.json", `{"mean_":[0,0,0],"scale_":[1,1,1]}`),
			ModelPath:        write("kmeans.json", `{"cluster_centers_":[[0,0,0],[5,5,5]]}`),
			DefaultTopN:      5,
			MaxTopN:          50,
		},
	}
}

func TestLoadStore_Files(t *testing.T) {
	cfg := writeArtifacts(t)

	store, err := LoadStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Similarity.Len())
	assert.Equal(t, 2, store.Model.NumClusters())
}

func TestLoadStore_MissingArtifact(t *testing.T) {
	cfg := writeArtifacts(t)
	cfg.Artifacts.ModelPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := LoadStore(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cluster model")
}

func TestLoadStore_UnknownSource(t *testing.T) {
	cfg := writeArtifacts(t)
	cfg.Artifacts.SimilaritySource = "s3"

	_, err := LoadStore(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLoadStore_SampleArtifacts(t *testing.T) {
	cfg := &config.Config{
		Artifacts: config.ArtifactConfig{
			SimilaritySource: config.SimilaritySourceFile,
			SimilarityPath:   filepath.Join("..", "..", "artifacts", "product_similarity.csv"),
			ScalerPath:       filepath.Join("..", "..", "artifacts", "scaler.json"),
			ModelPath:        filepath.Join("..", "..", "artifacts", "kmeans_model.json"),
		},
	}

	store, err := LoadStore(context.Background(), cfg)
	require.NoError(t, err)

	got, ok := store.Similarity.Nearest("JUMBO BAG RED RETROSPOT", 1)
	require.True(t, ok)
	assert.Equal(t, "LUNCH BAG RED RETROSPOT", got[0].Product)

	assert.Equal(t, 4, store.Model.NumClusters())
}
