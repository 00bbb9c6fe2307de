package placeholder

import (
	"github.com/cockroachdb/errors"
)

// ResultFactory produces a deterministic (value, error) pair for the given seed.
type ResultFactory[T any] func(seed int) (T, error)

// Result returns a ResultFactory that succeeds for seed 0 and fails with the error of errFactory for seed 1.
// Any other seed is a misuse of the fixture and panics.
func Result[T any](factory Factory[T], errFactory Factory[error]) ResultFactory[T] {
	return func(seed int) (value T, err error) {
		switch seed {
		case 0:
			return factory(seed), nil
		case 1:
			return value, errFactory(seed)
		default:
			panic(errors.Wrapf(ErrInvalidSeed, "result fixtures only support the seeds 0 and 1, got %d", seed))
		}
	}
}

// FutureFactory produces a channel that eventually delivers the value for the given seed.
type FutureFactory[T any] func(seed int) <-chan T

// Future returns a FutureFactory that computes the value of the given Factory on a separate goroutine.
// The returned channel delivers exactly one value and is closed afterwards.
func Future[T any](factory Factory[T]) FutureFactory[T] {
	return func(seed int) <-chan T {
		result := make(chan T, 1)

		go func() {
			defer close(result)

			result <- factory(seed)
		}()

		return result
	}
}
