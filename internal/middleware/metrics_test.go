package middleware

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavamo135/linked-list/pkg/syncll"
)

func TestMetricMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	l := NewMetricMiddleware[int]("test", syncll.New[int](), reg)

	l.PushBack(1)
	l.PushFront(0)
	assert.Equal(t, uint(2), l.Size())

	v, err := l.GetByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = l.GetByIndex(5)
	require.ErrorIs(t, err, syncll.ErrIndexOutOfRange)

	for i := 0; i < 3; i++ {
		_, _ = l.PopFront()
	}

	mm, ok := l.(*metricMiddleware[int])
	require.True(t, ok)

	assert.Equal(t, float64(1), testutil.ToFloat64(mm.operationErrors.WithLabelValues("test", opPopFront)))
	assert.Equal(t, float64(1), testutil.ToFloat64(mm.operationErrors.WithLabelValues("test", opGetByIndex)))

	// push_back, push_front, size, get_by_index ok/error, pop_front ok/error
	assert.Equal(t, 7, testutil.CollectAndCount(mm.operationSeconds))
}

func TestMetricMiddleware_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetricMiddleware[int]("a", syncll.New[int](), reg)

	assert.Panics(t, func() {
		NewMetricMiddleware[int]("b", syncll.New[int](), reg)
	})
}
