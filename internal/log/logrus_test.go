package log

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Fields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.TraceLevel)

	l := NewLogger(base).WithField("pkg", "list").WithFields(map[string]interface{}{"size": 2})
	l.WithError(errors.New("boom")).Debugf("pop %s", "front")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "pop front", entry.Message)
	assert.Equal(t, "list", entry.Data["pkg"])
	assert.Equal(t, 2, entry.Data["size"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestLogger_Levels(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.InfoLevel)

	l := NewLogger(base)
	l.Trace("hidden")
	l.Debug("hidden")
	l.Info("shown")
	l.Warn("shown")
	l.Error("shown")

	assert.Len(t, hook.AllEntries(), 3)
}
