// Package demo drives one list from a writer goroutine and a reader goroutine.
package demo

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/mavamo135/linked-list/internal/log"
	"github.com/mavamo135/linked-list/pkg/syncll"
)

//go:generate mockgen -source=demo.go -destination=mocks/mock_demo.go -package=mocks

const (
	valueKey = "value"
	stepKey  = "step"
)

type Demo interface {
	Run(ctx context.Context) []int
}

type queue interface {
	PushBack(v int)
	PopFront() (int, error)
	Size() uint
	Fprint(w io.Writer, format syncll.Formatter[int])
}

type demo struct {
	queue

	cfg Config
	out io.Writer

	log log.Logger
}

// Run blocks until both goroutines are done and returns the values popped by the reader.
func (d *demo) Run(ctx context.Context) []int {
	var (
		wg     sync.WaitGroup
		popped []int
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		d.write(ctx)
	}()

	go func() {
		defer wg.Done()
		popped = d.read(ctx)
	}()

	wg.Wait()

	return popped
}

func (d *demo) write(ctx context.Context) {
	for i := 0; i <= d.cfg.Count; i++ {
		d.queue.PushBack(i)
		d.log.WithField(valueKey, i).Debug("pushed")

		if i < d.cfg.Count && !sleep(ctx, d.cfg.WriteInterval) {
			d.log.Warn("writer interrupted")
			return
		}
	}

	d.log.Info("writer finished")
}

func (d *demo) read(ctx context.Context) []int {
	for d.queue.Size() == 0 {
		if !sleep(ctx, d.cfg.PollInterval) {
			d.log.Warn("reader interrupted before first value")
			return nil
		}
	}

	popped := make([]int, 0, d.cfg.Count+1)

	for i := 0; i <= d.cfg.Count; i++ {
		v, err := d.queue.PopFront()

		switch {
		case errors.Is(err, syncll.ErrEmptyList):
			d.log.WithField(stepKey, i).Debug("nothing to pop")
		case err != nil:
			d.log.WithError(err).Error("pop front")
			return popped
		default:
			popped = append(popped, v)
			d.log.WithField(valueKey, v).Debug("popped")
		}

		d.queue.Fprint(d.out, FormatJSON[int])

		if i < d.cfg.Count && !sleep(ctx, d.cfg.ReadInterval) {
			d.log.Warn("reader interrupted")
			return popped
		}
	}

	d.log.Info("reader finished")

	return popped
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func NewDemo(list queue, cfg Config, out io.Writer, logger log.Logger) Demo {
	return &demo{queue: list, cfg: cfg, out: out, log: logger}
}
