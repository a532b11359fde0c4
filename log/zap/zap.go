// Package zap adapts a *zap.Logger to jsontime.Logger.
package zap

import (
	"sort"

	"github.com/unkn0wn-root/jsontime"
	"go.uber.org/zap"
)

var _ jsontime.Logger = ZapLogger{}

// ZapLogger forwards jsontime events to L. A nil L discards them.
// Fields are written in key order; error values become zap error fields.
type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f jsontime.Fields) { z.logger().Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f jsontime.Fields)  { z.logger().Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f jsontime.Fields)  { z.logger().Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f jsontime.Fields) { z.logger().Error(msg, zf(f)...) }

func (z ZapLogger) logger() *zap.Logger {
	if z.L == nil {
		return zap.NewNop()
	}
	return z.L
}

func zf(f jsontime.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
