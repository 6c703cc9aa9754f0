// Package syncll implements a generic singly linked list guarded by one mutex.
//
// Every exported operation takes the lock for its whole duration, reads and writes
// alike. Visitors and formatters run while the lock is held and must not call back
// into the same list.
package syncll

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// List is a mutable sequence of T with push and pop at both ends.
type List[T any] interface {
	PushBack(v T)
	PushFront(v T)
	PopBack() (T, error)
	PopFront() (T, error)
	GetByIndex(index uint) (T, error)
	ForEach(visit Visitor[T], arg any)
	Print(format Formatter[T])
	Fprint(w io.Writer, format Formatter[T])
	Size() uint
	Clear()
	Destroy()
}

// Visitor is called once per element with the argument passed to ForEach.
type Visitor[T any] func(value T, arg any)

// Formatter writes a single element to w.
type Formatter[T any] func(w io.Writer, value T)

type node[T any] struct {
	next  *node[T]
	value T
}

type list[T any] struct {
	mu sync.Mutex

	first *node[T]
	last  *node[T]
	count uint

	destroyed bool
}

func (l *list[T]) PushBack(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	n := &node[T]{value: v}
	if l.first == nil {
		l.first = n
		l.last = n
		l.count = 1

		return
	}

	l.last.next = n
	l.last = n
	l.count++
}

func (l *list[T]) PushFront(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	n := &node[T]{value: v, next: l.first}
	if l.first == nil {
		l.last = n
	}

	l.first = n
	l.count++
}

func (l *list[T]) PopBack() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	var result T

	switch l.count {
	case 0:
		return result, ErrEmptyList
	case 1:
		result = l.first.value
		l.reset()

		return result, nil
	}

	// stop on the penultimate node, it becomes the new tail
	prev := l.first
	for prev.next.next != nil {
		prev = prev.next
	}

	result = prev.next.value
	prev.next = nil
	l.last = prev
	l.count--

	return result, nil
}

func (l *list[T]) PopFront() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	if l.first == nil {
		var result T
		return result, ErrEmptyList
	}

	n := l.first
	l.first = n.next
	n.next = nil
	l.count--

	if l.first == nil {
		l.last = nil
	}

	return n.value, nil
}

func (l *list[T]) GetByIndex(index uint) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	if index >= l.count {
		var result T
		return result, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.count)
	}

	n := l.first
	for i := uint(0); i < index; i++ {
		n = n.next
	}

	return n.value, nil
}

func (l *list[T]) ForEach(visit Visitor[T], arg any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	for n := l.first; n != nil; n = n.next {
		visit(n.value, arg)
	}
}

// Print writes every element to stdout followed by a line break.
func (l *list[T]) Print(format Formatter[T]) {
	l.Fprint(os.Stdout, format)
}

func (l *list[T]) Fprint(w io.Writer, format Formatter[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	for n := l.first; n != nil; n = n.next {
		format(w, n.value)
	}

	_, _ = io.WriteString(w, "\n")
}

func (l *list[T]) Size() uint {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	return l.count
}

// Clear drops every element. The list stays usable.
func (l *list[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.alive()

	l.reset()
}

// Destroy drops every element. Any later call except Destroy panics with ErrDestroyed.
func (l *list[T]) Destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.destroyed {
		return
	}

	l.reset()
	l.destroyed = true
}

// reset unlinks every node so that nothing keeps the old chain reachable.
func (l *list[T]) reset() {
	for n := l.first; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}

	l.first = nil
	l.last = nil
	l.count = 0
}

func (l *list[T]) alive() {
	if l.destroyed {
		panic(ErrDestroyed)
	}
}

// New creates an empty list.
func New[T any]() List[T] {
	return &list[T]{}
}
