package artifact

import (
	"errors"
	"fmt"
)

type ClusterModel interface {
	Predict(x Vector) int
	NumClusters() int
}

// KMeans assigns a scaled point to its nearest fitted centroid.
type KMeans struct {
	Centers []Vector
}

var _ ClusterModel = (*KMeans)(nil)

func NewKMeans(centers [][]float64) (*KMeans, error) {
	if len(centers) == 0 {
		return nil, errors.New("cluster model has no centers")
	}

	m := &KMeans{Centers: make([]Vector, len(centers))}
	for k, c := range centers {
		if len(c) != NumFeatures {
			return nil, fmt.Errorf("cluster center %d has %d features, want %d", k, len(c), NumFeatures)
		}
		copy(m.Centers[k][:], c)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *KMeans) Validate() error {
	if len(m.Centers) == 0 {
		return errors.New("cluster model has no centers")
	}
	for k, c := range m.Centers {
		for i := range NumFeatures {
			if !isFinite(c[i]) {
				return fmt.Errorf("cluster center %d has a non-finite %s coordinate", k, featureNames[i])
			}
		}
	}
	return nil
}

func (m *KMeans) NumClusters() int {
	return len(m.Centers)
}

// Predict returns the index of the closest center; ties go to the lower index.
func (m *KMeans) Predict(x Vector) int {
	best := 0
	bestDist := sqDist(x, m.Centers[0])
	for k := 1; k < len(m.Centers); k++ {
		if d := sqDist(x, m.Centers[k]); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func sqDist(a, b Vector) float64 {
	sum := 0.0
	for i := range NumFeatures {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
