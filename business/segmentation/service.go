package segmentation

import (
	"context"
	"fmt"

	"shopperSpectrum/business/artifact"
	"shopperSpectrum/domain"
	"shopperSpectrum/pkg/logger"
	"shopperSpectrum/pkg/metrics"
)

type Service struct {
	scaler artifact.Scaler
	model  artifact.ClusterModel
	labels map[int]string
}

func NewService(scaler artifact.Scaler, model artifact.ClusterModel) *Service {
	return &Service{
		scaler: scaler,
		model:  model,
		labels: domain.SegmentLabels,
	}
}

// PredictCluster scales the RFM features, assigns a cluster and returns its
// segment name. Inputs are not range checked. The only error is a context
// error.
func (s *Service) PredictCluster(ctx context.Context, recency, frequency, monetary float64) (string, error) {
	p, err := s.Classify(ctx, domain.RFM{
		Recency:   recency,
		Frequency: frequency,
		Monetary:  monetary,
	})
	if err != nil {
		return "", err
	}
	return p.Segment, nil
}

func (s *Service) Classify(ctx context.Context, rfm domain.RFM) (domain.SegmentPrediction, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when predict cluster")
		return domain.SegmentPrediction{}, fmt.Errorf("context error: %w", err)
	}

	scaled := s.scaler.Transform(artifact.Vector{rfm.Recency, rfm.Frequency, rfm.Monetary})
	cluster := s.model.Predict(scaled)

	label, ok := s.labels[cluster]
	if !ok {
		// model and label map are out of sync
		label = domain.UnknownSegment
		metrics.UnknownClusters.Inc()
		logger.Warn("cluster index has no segment label",
			"cluster", cluster,
			"model_clusters", s.model.NumClusters(),
		)
	}
	metrics.SegmentPredictions.WithLabelValues(label).Inc()

	return domain.SegmentPrediction{
		Input:   rfm,
		Scaled:  scaled,
		Cluster: cluster,
		Segment: label,
	}, nil
}
