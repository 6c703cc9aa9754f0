package sizewatcher

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/mavamo135/linked-list/internal/log"
	"github.com/mavamo135/linked-list/pkg/syncll"
)

func TestWatcher_Start(t *testing.T) {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "size"}, []string{})

	l := syncll.New[int]()
	l.PushBack(1)
	l.PushBack(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	w := NewWatcher(gauge, l, 10*time.Millisecond, log.NewLogger(logrus.New()))
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(gauge.WithLabelValues()) == 2
	}, time.Second, 5*time.Millisecond)

	l.PushBack(3)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(gauge.WithLabelValues()) == 3
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
