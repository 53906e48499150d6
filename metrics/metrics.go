package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the capture store.
type Metrics struct {
	// TotalCaptured is the number of webhooks held in the store
	TotalCaptured int64 `json:"total_captured"`

	// MethodCounts maps HTTP method to count of captured webhooks
	MethodCounts map[string]int64 `json:"method_counts"`

	// StatusCounts maps recorded status code to count of captured webhooks
	StatusCounts map[string]int64 `json:"status_counts"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the capture store.
type Collector interface {
	// Collect gathers current metrics from the store
	Collect(ctx context.Context) (Metrics, error)

	// GetTotalCaptured returns the number of webhooks held in the store
	GetTotalCaptured(ctx context.Context) (int64, error)

	// GetMethodCounts returns the count of captured webhooks by HTTP method
	GetMethodCounts(ctx context.Context) (map[string]int64, error)

	// GetStatusCounts returns the count of captured webhooks by status code
	GetStatusCounts(ctx context.Context) (map[string]int64, error)
}
