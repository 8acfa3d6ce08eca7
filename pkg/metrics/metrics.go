package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Similarity lookups by outcome: found or not_found
	SimilarLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "similarity_lookups_total",
		Help: "Total similar-product lookups by outcome",
	}, []string{"outcome"})

	SimilarLookupDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "similarity_lookup_duration_seconds",
		Help:    "Latency of similar-product lookups",
		Buckets: prometheus.DefBuckets,
	})

	// Segment predictions by assigned segment label
	SegmentPredictions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "segment_predictions_total",
		Help: "Total customer segment predictions by segment",
	}, []string{"segment"})

	UnknownClusters = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "segment_unknown_cluster_total",
		Help: "Predictions whose cluster index has no segment label",
	})

	ArtifactProducts = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "artifact_similarity_products",
		Help: "Number of products in the loaded similarity table",
	})
)

var once sync.Once

func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			SimilarLookups,
			SimilarLookupDuration,
			SegmentPredictions,
			UnknownClusters,
			ArtifactProducts,
		)
	})
}
