package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	console bool
}

type Option func(*options)

// WithConsole switches from JSON to the human-readable console encoder.
func WithConsole() Option {
	return func(o *options) { o.console = true }
}

// New builds a production logger at the given level. An empty verbosity
// means info.
func New(verbosity string, opts ...Option) (*zap.Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	config := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(verbosity)
	if err != nil {
		return nil, err
	}
	config.Level = level
	if o.console {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.Sampling = nil
	}
	return config.Build()
}
