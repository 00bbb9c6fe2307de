package digest

import (
	"runtime"

	"go.uber.org/zap"
)

var defaultOptions = Options{
	WorkerCount: runtime.NumCPU(),
	Hasher:      nil,
	Logger:      nil,
}

// Options contains the settings of a batch of digest computations.
type Options struct {
	WorkerCount int
	Hasher      Hasher
	Logger      *zap.SugaredLogger
}

// Option is a function setting an Options field.
type Option func(*Options)

// WithWorkerCount sets the number of files that are digested concurrently.
func WithWorkerCount(workerCount int) Option {
	return func(options *Options) {
		options.WorkerCount = workerCount
	}
}

// WithHasher sets the Hasher that is used instead of the DefaultHasher.
func WithHasher(hasher Hasher) Option {
	return func(options *Options) {
		options.Hasher = hasher
	}
}

// WithLogger sets the logger that reports the progress of the batch.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(options *Options) {
		options.Logger = logger
	}
}

// Override returns a copy of the Options with the given optional settings applied.
func (options Options) Override(optionalOptions ...Option) *Options {
	result := &options
	for _, option := range optionalOptions {
		option(result)
	}

	if result.WorkerCount < 1 {
		result.WorkerCount = 1
	}
	if result.Hasher == nil {
		result.Hasher = DefaultHasher
	}
	if result.Logger == nil {
		result.Logger = zap.NewNop().Sugar()
	}

	return result
}
