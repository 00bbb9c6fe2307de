package orderedmap

// Element is a single entry of the OrderedMap. It is shared between the index and the order log of the map.
type Element[K comparable, V any] struct {
	key   K
	value V
}

func newElement[K comparable, V any](key K, value V) *Element[K, V] {
	return &Element[K, V]{
		key:   key,
		value: value,
	}
}
