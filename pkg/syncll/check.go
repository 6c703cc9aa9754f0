package syncll

import "errors"

var errBrokenChain = errors.New("broken chain")

// check validates head, tail and count against the node chain. Caller must not hold the lock.
func (l *list[T]) check() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count == 0 {
		if l.first != nil || l.last != nil {
			return errBrokenChain
		}

		return nil
	}

	if l.first == nil || l.last == nil {
		return errBrokenChain
	}

	if l.count == 1 && l.first != l.last {
		return errBrokenChain
	}

	var (
		n    = l.first
		prev *node[T]
	)

	for i := uint(0); i < l.count; i++ {
		if n == nil {
			return errBrokenChain
		}

		prev, n = n, n.next
	}

	if n != nil || prev != l.last {
		return errBrokenChain
	}

	return nil
}
