package jsontime

// Fields is a minimal structured field map for logs. Config events carry
// "type" (the bound type name) and, for rejected input, "len" and "err".
type Fields map[string]any

// Logger receives registration and rejection events from a Config and the
// Serializers built from it. Adapters for zap, logrus and slog live under
// log/. If no Logger is configured, logging is disabled.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards every event.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
