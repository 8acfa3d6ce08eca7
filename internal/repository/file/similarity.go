package file

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"shopperSpectrum/business/artifact"

	"github.com/goccy/go-json"
)

// SimilarityRepository reads the product similarity table from a CSV or
// split-oriented JSON export, optionally zstd or gzip compressed.
type SimilarityRepository struct {
	path string
}

var _ artifact.SimilaritySource = (*SimilarityRepository)(nil)

func NewSimilarityRepository(path string) *SimilarityRepository {
	return &SimilarityRepository{path: path}
}

func (r *SimilarityRepository) LoadSimilarity(ctx context.Context) (*artifact.SimilarityTable, error) {
	data, ext, err := readArtifact(ctx, r.path)
	if err != nil {
		return nil, err
	}

	switch ext {
	case ".csv":
		return parseSimilarityCSV(data)
	case ".json":
		return parseSimilarityJSON(data)
	default:
		return nil, fmt.Errorf("unsupported similarity table format %q", ext)
	}
}

// header: ",A,B,C"; rows: "A,1,0.9,0.4"
func parseSimilarityCSV(data []byte) (*artifact.SimilarityTable, error) {
	rd := csv.NewReader(bytes.NewReader(data))

	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse similarity csv: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("similarity csv has no data rows")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, errors.New("similarity csv header has no product columns")
	}
	cols := header[1:]

	rows := make([]string, 0, len(records)-1)
	scores := make([][]float64, 0, len(records)-1)
	for n, rec := range records[1:] {
		line := n + 2
		rows = append(rows, rec[0])

		row := make([]float64, len(rec)-1)
		for j, cell := range rec[1:] {
			v, err := parseScore(cell)
			if err != nil {
				return nil, fmt.Errorf("similarity csv line %d column %d: %w", line, j+2, err)
			}
			row[j] = v
		}
		scores = append(scores, row)
	}

	return artifact.NewSimilarityTable(rows, cols, scores)
}

func parseScore(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}

type splitTable struct {
	Index   []string     `json:"index"`
	Columns []string     `json:"columns"`
	Data    [][]*float64 `json:"data"`
}

func parseSimilarityJSON(data []byte) (*artifact.SimilarityTable, error) {
	var st splitTable
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse similarity json: %w", err)
	}

	scores := make([][]float64, len(st.Data))
	for i, src := range st.Data {
		row := make([]float64, len(src))
		for j, v := range src {
			// null cells are missing scores
			if v == nil {
				row[j] = math.NaN()
				continue
			}
			row[j] = *v
		}
		scores[i] = row
	}

	return artifact.NewSimilarityTable(st.Index, st.Columns, scores)
}
