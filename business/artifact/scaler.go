package artifact

import (
	"fmt"
	"math"
)

// NumFeatures is the width of the RFM vector: recency, frequency, monetary.
const NumFeatures = 3

type Vector [NumFeatures]float64

var featureNames = [NumFeatures]string{"recency", "frequency", "monetary"}

type Scaler interface {
	Transform(x Vector) Vector
}

// StandardScaler applies the fitted per-feature affine transform (x - mean) / scale.
type StandardScaler struct {
	Mean  Vector
	Scale Vector
}

var _ Scaler = StandardScaler{}

// NewStandardScaler checks that both parameter slices cover exactly the three features.
func NewStandardScaler(mean, scale []float64) (StandardScaler, error) {
	if len(mean) != NumFeatures {
		return StandardScaler{}, fmt.Errorf("scaler mean has %d features, want %d", len(mean), NumFeatures)
	}
	if len(scale) != NumFeatures {
		return StandardScaler{}, fmt.Errorf("scaler scale has %d features, want %d", len(scale), NumFeatures)
	}

	var s StandardScaler
	copy(s.Mean[:], mean)
	copy(s.Scale[:], scale)

	if err := s.Validate(); err != nil {
		return StandardScaler{}, err
	}
	return s, nil
}

func (s StandardScaler) Validate() error {
	for i := range NumFeatures {
		if !isFinite(s.Mean[i]) {
			return fmt.Errorf("scaler mean for %s is not finite", featureNames[i])
		}
		if !isFinite(s.Scale[i]) {
			return fmt.Errorf("scaler scale for %s is not finite", featureNames[i])
		}
	}
	return nil
}

func (s StandardScaler) Transform(x Vector) Vector {
	var out Vector
	for i := range NumFeatures {
		scale := s.Scale[i]
		// constant features are stored with a zero scale
		if scale == 0 {
			scale = 1
		}
		out[i] = (x[i] - s.Mean[i]) / scale
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
