//go:build !integration

package file

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"shopperSpectrum/business/artifact"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tableCSV = `,A,B,C
A,1.0,0.9,0.4
B,0.9,1.0,0.2
C,0.4,0.2,1.0
`

const tableJSON = `{
  "index": ["A", "B", "C"],
  "columns": ["A", "B", "C"],
  "data": [[1.0, 0.9, 0.4], [0.9, 1.0, null], [0.4, null, 1.0]]
}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func nearestNames(t *testing.T, table *artifact.SimilarityTable, product string, n int) []string {
	t.Helper()
	got, ok := table.Nearest(product, n)
	require.True(t, ok)
	out := make([]string, len(got))
	for i, nb := range got {
		out[i] = nb.Product
	}
	return out
}

func TestLoadSimilarity_Formats(t *testing.T) {
	tests := []struct {
		name string
		file string
		data func(t *testing.T) []byte
	}{
		{"csv", "sim.csv", func(t *testing.T) []byte { return []byte(tableCSV) }},
		{"csv zstd", "sim.csv.zst", func(t *testing.T) []byte { return zstdBytes(t, []byte(tableCSV)) }},
		{"csv gzip", "sim.CSV.gz", func(t *testing.T) []byte { return gzipBytes(t, []byte(tableCSV)) }},
		{"json", "sim.json", func(t *testing.T) []byte { return []byte(tableJSON) }},
		{"json zstd", "sim.json.zst", func(t *testing.T) []byte { return zstdBytes(t, []byte(tableJSON)) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, tc.data(t))

			table, err := NewSimilarityRepository(path).LoadSimilarity(context.Background())
			require.NoError(t, err)

			assert.Equal(t, 3, table.Len())
			assert.Equal(t, []string{"B"}, nearestNames(t, table, "A", 1))
			assert.Equal(t, []string{"B", "C"}, nearestNames(t, table, "A", 5))
		})
	}
}

func TestLoadSimilarity_JSONNullIsNaN(t *testing.T) {
	path := writeFile(t, "sim.json", []byte(tableJSON))

	table, err := NewSimilarityRepository(path).LoadSimilarity(context.Background())
	require.NoError(t, err)

	score, ok := table.Score("B", "C")
	require.True(t, ok)
	assert.True(t, math.IsNaN(score))
	assert.Equal(t, []string{"A", "C"}, nearestNames(t, table, "B", 2))
}

func TestLoadSimilarity_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"unsupported extension", "sim.parquet", tableCSV},
		{"bad number", "sim.csv", ",A,B\nA,1,x\nB,0,1\n"},
		{"ragged row", "sim.csv", ",A,B\nA,1\nB,0,1\n"},
		{"header only", "sim.csv", ",A,B\n"},
		{"not square", "sim.csv", ",A,B,C\nA,1,0,0\nB,0,1,0\n"},
		{"bad json", "sim.json", "{"},
		{"corrupt zstd", "sim.csv.zst", "not zstd"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, []byte(tc.data))
			_, err := NewSimilarityRepository(path).LoadSimilarity(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestLoadSimilarity_MissingFile(t *testing.T) {
	_, err := NewSimilarityRepository(filepath.Join(t.TempDir(), "none.csv")).LoadSimilarity(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSimilarity_CanceledContext(t *testing.T) {
	path := writeFile(t, "sim.csv", []byte(tableCSV))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimilarityRepository(path).LoadSimilarity(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadScalerAndModel(t *testing.T) {
	scalerPath := writeFile(t, "scaler.json", []byte(`{"mean_":[90,4,2000],"scale_":[100,5,8000]}`))
	modelPath := writeFile(t, "kmeans.json.gz", gzipBytes(t, []byte(`{"cluster_centers_":[
		[-0.8, 1.5, 1.9],
		[-0.5, 0.1, 0.0],
		[0.2, -0.5, -0.3],
		[1.8, -0.7, -0.4]
	]}`)))

	scaler, err := NewScalerRepository(scalerPath).LoadScaler(context.Background())
	require.NoError(t, err)
	model, err := NewModelRepository(modelPath).LoadModel(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, model.NumClusters())

	scaled := scaler.Transform(artifact.Vector{10, 12, 17000})
	assert.InDelta(t, -0.8, scaled[0], 1e-9)
	assert.Equal(t, 0, model.Predict(scaled))
	assert.Equal(t, 3, model.Predict(scaler.Transform(artifact.Vector{300, 1, 100})))
}

func TestLoadScaler_Errors(t *testing.T) {
	wrongDims := writeFile(t, "scaler.json", []byte(`{"mean_":[1,2],"scale_":[1,1]}`))
	_, err := NewScalerRepository(wrongDims).LoadScaler(context.Background())
	assert.Error(t, err)

	notJSON := writeFile(t, "scaler.joblib", []byte("binary"))
	_, err = NewScalerRepository(notJSON).LoadScaler(context.Background())
	assert.Error(t, err)
}

func TestLoadModel_Errors(t *testing.T) {
	empty := writeFile(t, "kmeans.json", []byte(`{"cluster_centers_":[]}`))
	_, err := NewModelRepository(empty).LoadModel(context.Background())
	assert.Error(t, err)

	bad := writeFile(t, "kmeans.json", []byte(`{"cluster_centers_":[[1,2]]}`))
	_, err = NewModelRepository(bad).LoadModel(context.Background())
	assert.Error(t, err)
}
