package demo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavamo135/linked-list/internal/demo/mocks"
	"github.com/mavamo135/linked-list/internal/log"
	"github.com/mavamo135/linked-list/pkg/syncll"
)

func Test_demo_Run(t *testing.T) {
	t.Run("mocked queue", func(t *testing.T) {
		q := mocks.NewMockqueue(gomock.NewController(t))
		q.EXPECT().PushBack(0).Times(1)
		q.EXPECT().PushBack(1).Times(1)
		q.EXPECT().Size().Return(uint(2)).AnyTimes()
		q.EXPECT().PopFront().Return(0, nil).Times(1)
		q.EXPECT().PopFront().Return(0, syncll.ErrEmptyList).Times(1)
		q.EXPECT().Fprint(gomock.Any(), gomock.Any()).Times(2)

		d := NewDemo(q, Config{Count: 1}, io.Discard, log.NewLogger(logrus.New()))
		assert.Equal(t, []int{0}, d.Run(context.Background()))
	})

	t.Run("pop failure stops reader", func(t *testing.T) {
		q := mocks.NewMockqueue(gomock.NewController(t))
		q.EXPECT().PushBack(gomock.Any()).Times(3)
		q.EXPECT().Size().Return(uint(1)).AnyTimes()
		q.EXPECT().PopFront().Return(7, nil).Times(1)
		q.EXPECT().PopFront().Return(0, errors.New("broken")).Times(1)
		q.EXPECT().Fprint(gomock.Any(), gomock.Any()).Times(1)

		d := NewDemo(q, Config{Count: 2}, io.Discard, log.NewLogger(logrus.New()))
		assert.Equal(t, []int{7}, d.Run(context.Background()))
	})

	t.Run("real list", func(t *testing.T) {
		const count = 10

		l := syncll.New[int]()
		buf := new(bytes.Buffer)

		d := NewDemo(l, Config{Count: count, ReadInterval: time.Millisecond}, buf, log.NewLogger(logrus.New()))
		popped := d.Run(context.Background())

		for i := 1; i < len(popped); i++ {
			assert.Less(t, popped[i-1], popped[i])
		}

		assert.Equal(t, uint(count+1), uint(len(popped))+l.Size())
		assert.Equal(t, count+1, bytes.Count(buf.Bytes(), []byte("\n")))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		l := syncll.New[int]()
		cfg := Config{Count: 5, WriteInterval: time.Hour, ReadInterval: time.Hour, PollInterval: time.Hour}

		d := NewDemo(l, cfg, io.Discard, log.NewLogger(logrus.New()))
		popped := d.Run(ctx)

		require.LessOrEqual(t, len(popped), 1)
		assert.Equal(t, uint(1), uint(len(popped))+l.Size())
	})
}

func TestFormatJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	FormatJSON(buf, 42)
	FormatJSON(buf, struct {
		Name string `json:"name"`
	}{Name: "node"})

	assert.Equal(t, `42 {"name":"node"} `, buf.String())
}
