//go:build !integration

package cmd

import (
	"bytes"
	"context"
	"testing"

	"shopperSpectrum/business/artifact"
	"shopperSpectrum/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubStore(t *testing.T) {
	t.Helper()

	table, err := artifact.NewSimilarityTable(
		[]string{"A", "B", "C"},
		[]string{"A", "B", "C"},
		[][]float64{{1, 0.9, 0.4}, {0.9, 1, 0.2}, {0.4, 0.2, 1}},
	)
	require.NoError(t, err)
	scaler, err := artifact.NewStandardScaler([]float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(t, err)
	model, err := artifact.NewKMeans([][]float64{{30, 5, 100}, {500, 1, 10}})
	require.NoError(t, err)

	orig := loadStore
	loadStore = func(ctx context.Context) (*artifact.Store, *config.Config, error) {
		return &artifact.Store{Similarity: table, Scaler: scaler, Model: model},
			&config.Config{Artifacts: config.ArtifactConfig{DefaultTopN: 5, MaxTopN: 50}}, nil
	}
	t.Cleanup(func() { loadStore = orig })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagSimilarTop = 0
		flagProductsLimit = 0
		flagRecency, flagFrequency, flagMonetary = 30, 5, 100
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimilarCommand(t *testing.T) {
	stubStore(t)

	out, err := run(t, "similar", "A", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1. B")
	assert.NotContains(t, out, "C (")
}

func TestSimilarCommand_NotFound(t *testing.T) {
	stubStore(t)

	_, err := run(t, "similar", "Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product 'Z' not found")
}

func TestSegmentCommand(t *testing.T) {
	stubStore(t)

	out, err := run(t, "segment", "--recency", "30", "--frequency", "5", "--monetary", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "High-Value")

	out, err = run(t, "segment", "--recency", "480", "--frequency", "1", "--monetary", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Regular")
}

func TestSegmentCommand_OutOfRange(t *testing.T) {
	stubStore(t)

	_, err := run(t, "segment", "--recency", "1001")
	assert.Error(t, err)
}

func TestProductsCommand(t *testing.T) {
	stubStore(t)

	out, err := run(t, "products", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", out)
}
