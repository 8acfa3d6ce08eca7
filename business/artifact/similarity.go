package artifact

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// SimilarityTable is a square product-by-product score matrix.
// Row i and column i always refer to the same product.
type SimilarityTable struct {
	products []string
	index    map[string]int
	scores   [][]float64
}

type Neighbor struct {
	Product string
	Score   float64
}

// NewSimilarityTable validates the shape and identifier sets of a loaded matrix.
// Columns are reordered to follow the row order when the two differ.
func NewSimilarityTable(rows, cols []string, scores [][]float64) (*SimilarityTable, error) {
	if len(rows) == 0 {
		return nil, errors.New("similarity table is empty")
	}
	if len(cols) != len(rows) {
		return nil, fmt.Errorf("similarity table is not square: %d rows, %d columns", len(rows), len(cols))
	}
	if len(scores) != len(rows) {
		return nil, fmt.Errorf("similarity table has %d score rows for %d products", len(scores), len(rows))
	}

	index, err := buildIndex(rows, "row")
	if err != nil {
		return nil, err
	}
	colIndex, err := buildIndex(cols, "column")
	if err != nil {
		return nil, err
	}

	// perm[j] is the position in the source row of the column for products[j]
	perm := make([]int, len(rows))
	for j, name := range rows {
		c, ok := colIndex[name]
		if !ok {
			return nil, fmt.Errorf("product %q has a row but no column", name)
		}
		perm[j] = c
	}

	matrix := make([][]float64, len(rows))
	for i, src := range scores {
		if len(src) != len(cols) {
			return nil, fmt.Errorf("row %q has %d scores, want %d", rows[i], len(src), len(cols))
		}
		row := make([]float64, len(rows))
		for j, c := range perm {
			row[j] = src[c]
		}
		matrix[i] = row
	}

	products := make([]string, len(rows))
	copy(products, rows)

	return &SimilarityTable{
		products: products,
		index:    index,
		scores:   matrix,
	}, nil
}

func buildIndex(names []string, axis string) (map[string]int, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("empty product identifier at %s %d", axis, i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate product identifier %q on %s axis", name, axis)
		}
		index[name] = i
	}
	return index, nil
}

func (t *SimilarityTable) Len() int {
	return len(t.products)
}

// Products returns the identifiers in table order.
func (t *SimilarityTable) Products() []string {
	out := make([]string, len(t.products))
	copy(out, t.products)
	return out
}

func (t *SimilarityTable) Contains(product string) bool {
	_, ok := t.index[product]
	return ok
}

func (t *SimilarityTable) Score(a, b string) (float64, bool) {
	i, ok := t.index[a]
	if !ok {
		return 0, false
	}
	j, ok := t.index[b]
	if !ok {
		return 0, false
	}
	return t.scores[i][j], true
}

// Nearest returns up to n neighbors of product ordered by descending score.
// The product itself is never included. Equal scores keep table order and
// NaN scores sort last. The bool is false when product is unknown.
func (t *SimilarityTable) Nearest(product string, n int) ([]Neighbor, bool) {
	i, ok := t.index[product]
	if !ok {
		return nil, false
	}
	if n <= 0 {
		return []Neighbor{}, true
	}

	row := t.scores[i]
	candidates := make([]Neighbor, 0, len(row)-1)
	for j, score := range row {
		if j == i {
			continue
		}
		candidates = append(candidates, Neighbor{Product: t.products[j], Score: score})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return scoreGreater(candidates[a].Score, candidates[b].Score)
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n], true
}

func scoreGreater(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}
