package middleware

import (
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mavamo135/linked-list/pkg/syncll"
)

const (
	namespace = "linked_list"
	subsystem = "list"

	opPushBack   = "push_back"
	opPushFront  = "push_front"
	opPopBack    = "pop_back"
	opPopFront   = "pop_front"
	opGetByIndex = "get_by_index"
	opForEach    = "for_each"
	opPrint      = "print"
	opSize       = "size"
	opClear      = "clear"
	opDestroy    = "destroy"
)

type metricMiddleware[T any] struct {
	name string
	next syncll.List[T]

	operationSeconds *prometheus.HistogramVec
	operationErrors  *prometheus.CounterVec
}

func (m *metricMiddleware[T]) PushBack(v T) {
	st := time.Now()
	m.next.PushBack(v)
	m.observe(opPushBack, st, nil)
}

func (m *metricMiddleware[T]) PushFront(v T) {
	st := time.Now()
	m.next.PushFront(v)
	m.observe(opPushFront, st, nil)
}

func (m *metricMiddleware[T]) PopBack() (T, error) {
	st := time.Now()
	v, err := m.next.PopBack()
	m.observe(opPopBack, st, err)

	return v, err
}

func (m *metricMiddleware[T]) PopFront() (T, error) {
	st := time.Now()
	v, err := m.next.PopFront()
	m.observe(opPopFront, st, err)

	return v, err
}

func (m *metricMiddleware[T]) GetByIndex(index uint) (T, error) {
	st := time.Now()
	v, err := m.next.GetByIndex(index)
	m.observe(opGetByIndex, st, err)

	return v, err
}

func (m *metricMiddleware[T]) ForEach(visit syncll.Visitor[T], arg any) {
	st := time.Now()
	m.next.ForEach(visit, arg)
	m.observe(opForEach, st, nil)
}

func (m *metricMiddleware[T]) Print(format syncll.Formatter[T]) {
	st := time.Now()
	m.next.Print(format)
	m.observe(opPrint, st, nil)
}

func (m *metricMiddleware[T]) Fprint(w io.Writer, format syncll.Formatter[T]) {
	st := time.Now()
	m.next.Fprint(w, format)
	m.observe(opPrint, st, nil)
}

func (m *metricMiddleware[T]) Size() uint {
	st := time.Now()
	size := m.next.Size()
	m.observe(opSize, st, nil)

	return size
}

func (m *metricMiddleware[T]) Clear() {
	st := time.Now()
	m.next.Clear()
	m.observe(opClear, st, nil)
}

func (m *metricMiddleware[T]) Destroy() {
	st := time.Now()
	m.next.Destroy()
	m.observe(opDestroy, st, nil)
}

func (m *metricMiddleware[T]) observe(operation string, st time.Time, err error) {
	m.operationSeconds.WithLabelValues(m.name, operation, strconv.FormatBool(err != nil)).Observe(time.Since(st).Seconds())

	if err != nil {
		m.operationErrors.WithLabelValues(m.name, operation).Inc()
	}
}

// NewMetricMiddleware wraps next with operation latency and error metrics registered in reg.
func NewMetricMiddleware[T any](name string, next syncll.List[T], reg prometheus.Registerer) syncll.List[T] {
	seconds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "operation_seconds",
		Help:      "List operations histogram in seconds",
		Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12), //nolint:gomnd
	}, []string{"list", "operation", "error"})

	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "operation_errors_total",
		Help:      "Failed pop and index operations",
	}, []string{"list", "operation"})

	reg.MustRegister(seconds, errs)

	return &metricMiddleware[T]{
		name:             name,
		next:             next,
		operationSeconds: seconds,
		operationErrors:  errs,
	}
}
