package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marcelsud/webhook-capture/capture"
	"github.com/marcelsud/webhook-capture/capture/mocks"
)

func TestStoreCollector_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("maps store stats onto metrics", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Stats", mock.Anything).Return(capture.Stats{
			Total: 75,
			ByMethod: map[string]int64{
				"POST": 70,
				"GET":  5,
			},
			ByStatus: map[int]int64{
				200: 60,
				500: 15,
			},
		}, nil)

		collector := NewStoreCollector(repo)
		m, err := collector.Collect(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(75), m.TotalCaptured)
		assert.Equal(t, int64(70), m.MethodCounts["POST"])
		assert.Equal(t, int64(60), m.StatusCounts["200"])
		assert.Equal(t, int64(15), m.StatusCounts["500"])
		assert.False(t, m.Timestamp.IsZero())
	})

	t.Run("propagates store failures", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Stats", mock.Anything).Return(capture.Stats{}, errors.New("connection refused"))

		collector := NewStoreCollector(repo)
		_, err := collector.Collect(ctx)

		assert.ErrorContains(t, err, "collecting store stats")
	})
}

func TestStoreCollector_Getters(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewRepository(t)
	repo.On("Stats", mock.Anything).Return(capture.Stats{
		Total:    12,
		ByMethod: map[string]int64{"PUT": 12},
		ByStatus: map[int]int64{201: 12},
	}, nil)

	collector := NewStoreCollector(repo)

	total, err := collector.GetTotalCaptured(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)

	methods, err := collector.GetMethodCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"PUT": 12}, methods)

	statuses, err := collector.GetStatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"201": 12}, statuses)
}

func TestCollector_Interface(t *testing.T) {
	t.Run("StoreCollector implements Collector interface", func(t *testing.T) {
		var _ Collector = (*StoreCollector)(nil)
	})
}
