package ccapi

// Metric is a named series of points for a deployed resource.
type Metric struct {
	Name   string        `json:"name"   yaml:"name"`
	Unit   string        `json:"unit"   yaml:"unit"`
	Points []MetricPoint `json:"points" yaml:"points"`
}

// MetricPoint is a single sample of a metric series.
type MetricPoint struct {
	Timestamp int64   `json:"timestamp" yaml:"timestamp"`
	Value     float64 `json:"value"     yaml:"value"`
}
