package demo

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// FormatJSON writes v as JSON followed by a space.
func FormatJSON[T any](w io.Writer, v T) {
	data, err := jsoniter.Marshal(v)
	if err != nil {
		data = []byte(`"?"`)
	}

	_, _ = w.Write(append(data, ' '))
}
