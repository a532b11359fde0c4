// Package logrus adapts a *logrus.Entry to jsontime.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/jsontime"
)

var _ jsontime.Logger = LogrusLogger{}

// LogrusLogger forwards jsontime events to E. A nil E uses the logrus
// standard logger. An error under "err" is attached with WithError so it
// lands under logrus.ErrorKey.
type LogrusLogger struct{ E *logrus.Entry }

func (l LogrusLogger) Debug(msg string, f jsontime.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f jsontime.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f jsontime.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f jsontime.Fields) { l.with(f).Error(msg) }

func (l LogrusLogger) with(f jsontime.Fields) *logrus.Entry {
	e := l.E
	if e == nil {
		e = logrus.NewEntry(logrus.StandardLogger())
	}
	if len(f) == 0 {
		return e
	}
	data := make(logrus.Fields, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			e = e.WithError(err)
			continue
		}
		data[k] = v
	}
	return e.WithFields(data)
}
