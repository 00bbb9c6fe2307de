// Package placeholder provides deterministic stand-in values for test fixtures.
//
// Fixtures are assembled from small named factories instead of being derived from the requested type: every
// Factory turns an integer seed into a value, and the combinators in this package wrap factories into pointers,
// slices, optional values, results and futures.
package placeholder

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/tools/ds/orderedmap"
)

var (
	// ErrMock is the error produced by the Error factory.
	ErrMock = errors.New("mock error")
	// ErrInvalidSeed is returned (or panicked with) if a factory does not support the given seed.
	ErrInvalidSeed = errors.New("invalid placeholder seed")
)

// Factory produces a deterministic value for the given seed.
type Factory[T any] func(seed int) T

// Zero returns a Factory that always produces the zero value of T.
func Zero[T any]() Factory[T] {
	return func(int) (zero T) {
		return zero
	}
}

// Constant returns a Factory that always produces the given value.
func Constant[T any](value T) Factory[T] {
	return func(int) T {
		return value
	}
}

// Sequence returns a Factory that picks one of the given values by seed (modulo the number of values).
// Without any values it behaves like Zero.
func Sequence[T any](values ...T) Factory[T] {
	if len(values) == 0 {
		return Zero[T]()
	}

	return func(seed int) T {
		index := seed % len(values)
		if index < 0 {
			index += len(values)
		}

		return values[index]
	}
}

// Pointer returns a Factory that boxes the values of the given Factory.
func Pointer[T any](factory Factory[T]) Factory[*T] {
	return func(seed int) *T {
		value := factory(seed)

		return &value
	}
}

// Slice returns a Factory that produces a slice holding a single value of the given Factory.
func Slice[T any](factory Factory[T]) Factory[[]T] {
	return func(seed int) []T {
		return []T{factory(seed)}
	}
}

// Optional returns a Factory that produces a present value for seed 0 and nil for every other seed.
func Optional[T any](factory Factory[T]) Factory[*T] {
	return func(seed int) *T {
		if seed != 0 {
			return nil
		}

		value := factory(seed)

		return &value
	}
}

// Error returns a Factory that produces ErrMock.
func Error() Factory[error] {
	return Constant(ErrMock)
}

// OrderedMap builds an OrderedMap fixture by inserting the keys and values produced for the seeds 0 to count-1.
// Seeds that produce an already used key are rejected by the map.
func OrderedMap[K comparable, V any](keys Factory[K], values Factory[V], count int) *orderedmap.OrderedMap[K, V] {
	fixture := orderedmap.New[K, V]()
	for seed := range count {
		fixture.Set(keys(seed), values(seed))
	}

	return fixture
}
