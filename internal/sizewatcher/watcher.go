package sizewatcher

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mavamo135/linked-list/internal/log"
)

const sizeKey = "size"

type sizer interface {
	Size() uint
}

type Watcher interface {
	Start(ctx context.Context)
}

type watcher struct {
	sizer
	interval time.Duration
	size     *prometheus.GaugeVec

	log log.Logger
}

// Start samples the size every interval until ctx is done. It blocks.
func (w *watcher) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sample()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w *watcher) sample() {
	size := w.sizer.Size()

	w.log.WithField(sizeKey, size).Trace("current list size")

	w.size.WithLabelValues().Set(float64(size))
}

func NewWatcher(size *prometheus.GaugeVec, list sizer, interval time.Duration, logger log.Logger) Watcher {
	return &watcher{size: size, sizer: list, interval: interval, log: logger}
}
