package logger

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrInvalidLevel is returned if the configured log level is unknown.
var ErrInvalidLevel = errors.New("invalid log level")

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*zap.SugaredLogger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, errors.Wrapf(ErrInvalidLevel, "unable to parse %q", cfg.Level)
		}
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = DefaultCfg.Encoding
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = DefaultCfg.OutputPaths
	}

	zapCfg := zap.Config{
		Level:             level,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build logger")
	}

	return logger.Sugar(), nil
}

// NewNopLogger returns a logger that discards all messages.
func NewNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
