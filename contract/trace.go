package contract

import "go.uber.org/zap"

// Tracer records diagnostic entries. It is purely observational and never
// affects the outcome of a check.
type Tracer interface {
	Log(tag string, value any)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(tag string, value any)

func (f TracerFunc) Log(tag string, value any) { f(tag, value) }

// NopTracer discards every entry.
var NopTracer Tracer = nopTracer{}

type nopTracer struct{}

func (nopTracer) Log(string, any) {}

// ZapTracer logs entries at debug level. A context type that implements
// zapcore.ObjectMarshaler is logged field by field.
func ZapTracer(logger *zap.Logger) Tracer {
	if logger == nil {
		return NopTracer
	}
	return zapTracer{logger: logger}
}

type zapTracer struct {
	logger *zap.Logger
}

func (z zapTracer) Log(tag string, value any) {
	z.logger.Debug("trace", zap.String("tag", tag), zap.Any("value", value))
}
