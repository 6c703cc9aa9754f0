package middleware

import (
	"errors"
	"io"

	"github.com/mavamo135/linked-list/internal/log"
	"github.com/mavamo135/linked-list/pkg/syncll"
)

const (
	valueKey     = "value"
	sizeKey      = "size"
	indexKey     = "index"
	operationKey = "operation"
)

type logMiddleware[T any] struct {
	next syncll.List[T]

	log log.Logger
}

func (m *logMiddleware[T]) PushBack(v T) {
	m.next.PushBack(v)
	m.traceMutation(opPushBack, v)
}

func (m *logMiddleware[T]) PushFront(v T) {
	m.next.PushFront(v)
	m.traceMutation(opPushFront, v)
}

func (m *logMiddleware[T]) PopBack() (T, error) {
	v, err := m.next.PopBack()
	m.logPop(opPopBack, v, err)

	return v, err
}

func (m *logMiddleware[T]) PopFront() (T, error) {
	v, err := m.next.PopFront()
	m.logPop(opPopFront, v, err)

	return v, err
}

func (m *logMiddleware[T]) GetByIndex(index uint) (T, error) {
	v, err := m.next.GetByIndex(index)
	if err != nil {
		m.logError(opGetByIndex, err, m.log.WithField(indexKey, index))
	}

	return v, err
}

func (m *logMiddleware[T]) ForEach(visit syncll.Visitor[T], arg any) {
	m.next.ForEach(visit, arg)
}

func (m *logMiddleware[T]) Print(format syncll.Formatter[T]) {
	m.next.Print(format)
}

func (m *logMiddleware[T]) Fprint(w io.Writer, format syncll.Formatter[T]) {
	m.next.Fprint(w, format)
}

func (m *logMiddleware[T]) Size() uint {
	return m.next.Size()
}

func (m *logMiddleware[T]) Clear() {
	m.next.Clear()
	m.log.WithField(operationKey, opClear).Debug("list cleared")
}

func (m *logMiddleware[T]) Destroy() {
	m.next.Destroy()
	m.log.WithField(operationKey, opDestroy).Debug("list destroyed")
}

// Size is read after the operation returns, so under contention it may already include other callers.
func (m *logMiddleware[T]) traceMutation(operation string, v T) {
	m.log.WithFields(map[string]interface{}{
		operationKey: operation,
		valueKey:     v,
		sizeKey:      m.next.Size(),
	}).Trace("list changed")
}

func (m *logMiddleware[T]) logPop(operation string, v T, err error) {
	if err != nil {
		m.logError(operation, err, m.log)
		return
	}

	m.traceMutation(operation, v)
}

func (m *logMiddleware[T]) logError(operation string, err error, logger log.Logger) {
	logger = logger.WithField(operationKey, operation).WithError(err)

	if errors.Is(err, syncll.ErrEmptyList) || errors.Is(err, syncll.ErrIndexOutOfRange) {
		logger.Debug("list operation rejected")
		return
	}

	logger.Error("list operation failed")
}

// NewLogMiddleware wraps next with trace logging of mutations and debug logging of rejected calls.
func NewLogMiddleware[T any](next syncll.List[T], logger log.Logger) syncll.List[T] {
	return &logMiddleware[T]{next: next, log: logger}
}
