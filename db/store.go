package db

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound signals a point lookup miss.
var ErrNotFound = errors.New("metric not found")

// Metric type literals stored in the table.
const (
	MetricMaxDiff = "maxdiff"
	MetricSD      = "sd"
	MetricTemp    = "temp"
)

// MetricKey is the composite primary key of one stored statistic.
type MetricKey struct {
	Period     string
	MetricType string
}

// NewMetricKey derives the storage key for a validated month/year pair.
func NewMetricKey(month, year int, metricType string) MetricKey {
	return MetricKey{
		Period:     fmt.Sprintf("%04d-%02d", year, month),
		MetricType: metricType,
	}
}

// MetricRecord is one stored statistic with its full attribute set.
// Attrs keeps storage-native decimals until NormalizeNumbers runs.
type MetricRecord struct {
	Period     string
	MetricType string
	Attrs      map[string]any
}

// Store is the read-only view of the statistics table consumed by the
// HTTP handlers. Constructed once at startup and injected, so tests can
// substitute a double with no network dependency.
type Store interface {
	GetMetric(ctx context.Context, key MetricKey) (*MetricRecord, error)
	ScanMetrics(ctx context.Context) ([]MetricRecord, error)
	Status(ctx context.Context) error
}
