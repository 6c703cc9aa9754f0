package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging surface used across the module, backed by logrus.
type Logger interface {
	Error(msgs ...interface{})
	Warn(msgs ...interface{})
	Info(msgs ...interface{})
	Debug(msgs ...interface{})
	Trace(msgs ...interface{})
	Tracef(s string, msgs ...interface{})
	Debugf(s string, msgs ...interface{})
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

type logger struct {
	entry *logrus.Entry
}

func (l *logger) Error(msgs ...interface{}) { l.entry.Error(msgs...) }
func (l *logger) Warn(msgs ...interface{})  { l.entry.Warn(msgs...) }
func (l *logger) Info(msgs ...interface{})  { l.entry.Info(msgs...) }
func (l *logger) Debug(msgs ...interface{}) { l.entry.Debug(msgs...) }
func (l *logger) Trace(msgs ...interface{}) { l.entry.Trace(msgs...) }

func (l *logger) Tracef(s string, msgs ...interface{}) {
	l.entry.Tracef(s, msgs...)
}

func (l *logger) Debugf(s string, msgs ...interface{}) {
	l.entry.Debugf(s, msgs...)
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields map[string]interface{}) Logger {
	return &logger{entry: l.entry.WithFields(fields)}
}

// NewLogger wraps a logrus.Logger
func NewLogger(log *logrus.Logger) Logger {
	return NewLoggerFromEntry(logrus.NewEntry(log))
}

// NewLoggerFromEntry wraps a logrus.Entry with its fields
func NewLoggerFromEntry(entry *logrus.Entry) Logger {
	return &logger{entry: entry}
}
