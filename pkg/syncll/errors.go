package syncll

import "errors"

var (
	ErrEmptyList       = errors.New("list is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDestroyed       = errors.New("list is destroyed")
)
