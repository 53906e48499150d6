package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/marcelsud/webhook-capture/capture"
)

// StatsReader is the slice of the storage layer the collector needs
type StatsReader interface {
	Stats(ctx context.Context) (capture.Stats, error)
}

// StoreCollector derives metrics from the capture store's own counters,
// so it works identically over Postgres and Redis.
type StoreCollector struct {
	store StatsReader
}

func NewStoreCollector(store StatsReader) *StoreCollector {
	return &StoreCollector{store: store}
}

// Collect gathers all metrics in a single store round trip
func (c *StoreCollector) Collect(ctx context.Context) (Metrics, error) {
	stats, err := c.store.Stats(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting store stats: %w", err)
	}

	return Metrics{
		TotalCaptured: stats.Total,
		MethodCounts:  stats.ByMethod,
		StatusCounts:  statusKeys(stats.ByStatus),
		Timestamp:     time.Now().UTC(),
	}, nil
}

func (c *StoreCollector) GetTotalCaptured(ctx context.Context) (int64, error) {
	stats, err := c.store.Stats(ctx)
	if err != nil {
		return 0, fmt.Errorf("collecting store stats: %w", err)
	}
	return stats.Total, nil
}

func (c *StoreCollector) GetMethodCounts(ctx context.Context) (map[string]int64, error) {
	stats, err := c.store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting store stats: %w", err)
	}
	return stats.ByMethod, nil
}

func (c *StoreCollector) GetStatusCounts(ctx context.Context) (map[string]int64, error) {
	stats, err := c.store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting store stats: %w", err)
	}
	return statusKeys(stats.ByStatus), nil
}

// statusKeys renders numeric status codes as strings for label use
func statusKeys(byStatus map[int]int64) map[string]int64 {
	counts := make(map[string]int64, len(byStatus))
	for code, count := range byStatus {
		counts[strconv.Itoa(code)] = count
	}
	return counts
}
