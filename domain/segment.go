package domain

// UnknownSegment is returned for a cluster index that has no label.
const UnknownSegment = "Unknown Cluster"

// SegmentLabels maps the cluster numbering of the trained model to segment names.
// It must be kept in sync with the model artifact: the model does not carry names.
var SegmentLabels = map[int]string{
	0: "High-Value",
	1: "Regular",
	2: "Occasional",
	3: "At-Risk",
}

// SegmentLabel returns the segment name for a cluster index, or UnknownSegment.
func SegmentLabel(cluster int) string {
	if label, ok := SegmentLabels[cluster]; ok {
		return label
	}
	return UnknownSegment
}

// RFM holds the three behavioral features of a customer.
type RFM struct {
	Recency   float64 `json:"recency"`   // days since last purchase
	Frequency float64 `json:"frequency"` // number of purchases
	Monetary  float64 `json:"monetary"`  // total spend
}

type SegmentPrediction struct {
	Input   RFM        `json:"input"`
	Scaled  [3]float64 `json:"scaled"`
	Cluster int        `json:"cluster"`
	Segment string     `json:"segment"`
}
