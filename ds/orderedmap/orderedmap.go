package orderedmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/kr/text"
)

// IndentationSize is the number of spaces used to indent multi-line values in String.
const IndentationSize = 4

// OrderedMap is a unique-key map that remembers the order in which its keys were first inserted.
//
// Keys are write-once: Set never overwrites an existing entry. Values can still be modified in place through
// GetMutable and Update, and since the order log and the index share the same elements, these modifications are
// visible during iteration.
//
// OrderedMap is not safe for concurrent use. Callers that share a map between goroutines need to guard every call
// with their own lock.
type OrderedMap[K comparable, V any] struct {
	index map[K]*Element[K, V]
	order []*Element[K, V]
}

// New returns a new, empty *OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	orderedMap := new(OrderedMap[K, V])
	orderedMap.Initialize()

	return orderedMap
}

// Initialize (re)sets the internal structures of the map.
func (o *OrderedMap[K, V]) Initialize() {
	o.index = make(map[K]*Element[K, V])
	o.order = nil
}

// Size returns the number of distinct keys stored in the map.
func (o *OrderedMap[K, V]) Size() int {
	if o == nil {
		return 0
	}

	return len(o.index)
}

// IsEmpty returns a boolean value indicating whether the map is empty.
func (o *OrderedMap[K, V]) IsEmpty() bool {
	return o.Size() == 0
}

// Has returns if an entry with the given key exists.
func (o *OrderedMap[K, V]) Has(key K) (has bool) {
	if o == nil {
		return false
	}

	_, has = o.index[key]

	return has
}

// Get returns the value mapped to the given key if it exists.
func (o *OrderedMap[K, V]) Get(key K) (value V, exists bool) {
	if o == nil {
		return value, false
	}

	element, exists := o.index[key]
	if !exists {
		return value, false
	}

	return element.value, true
}

// GetMutable returns a pointer to the value mapped to the given key. Writing through the pointer neither reorders
// nor duplicates the entry. The pointer is only valid until the next Clear.
func (o *OrderedMap[K, V]) GetMutable(key K) (value *V, exists bool) {
	if o == nil {
		return nil, false
	}

	element, exists := o.index[key]
	if !exists {
		return nil, false
	}

	return &element.value, true
}

// Update applies the given function to the value mapped to the given key. It returns false if the key is unknown.
func (o *OrderedMap[K, V]) Update(key K, update func(value *V)) (updated bool) {
	value, exists := o.GetMutable(key)
	if !exists {
		return false
	}

	update(value)

	return true
}

// Set adds the key-value pair to the map if the key was not stored before.
// It returns false (and leaves the map untouched) if the key already exists.
func (o *OrderedMap[K, V]) Set(key K, value V) (inserted bool) {
	if o.index == nil {
		o.Initialize()
	}

	if _, exists := o.index[key]; exists {
		return false
	}

	element := newElement(key, value)
	o.index[key] = element
	o.order = append(o.order, element)

	return true
}

// Head returns the first inserted entry.
func (o *OrderedMap[K, V]) Head() (key K, value V, exists bool) {
	if o.IsEmpty() {
		return key, value, false
	}

	return o.order[0].key, o.order[0].value, true
}

// Tail returns the last inserted entry.
func (o *OrderedMap[K, V]) Tail() (key K, value V, exists bool) {
	if o.IsEmpty() {
		return key, value, false
	}

	tail := o.order[len(o.order)-1]

	return tail.key, tail.value, true
}

// All returns an iterator over the entries of the map in insertion order.
// Every call returns a fresh iterator that starts at the first entry.
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		o.ForEach(yield)
	}
}

// Backward returns an iterator over the entries of the map in reverse insertion order.
func (o *OrderedMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		o.ForEachReverse(yield)
	}
}

// ForEach iterates through the map in insertion order and calls the consumer function for every element.
// The iteration can be aborted by returning false in the consumer.
func (o *OrderedMap[K, V]) ForEach(consumer func(key K, value V) bool) bool {
	if o == nil {
		return true
	}

	for _, element := range o.order {
		if !consumer(element.key, element.value) {
			return false
		}
	}

	return true
}

// ForEachReverse iterates through the map in reverse insertion order and calls the consumer function for every
// element. The iteration can be aborted by returning false in the consumer.
func (o *OrderedMap[K, V]) ForEachReverse(consumer func(key K, value V) bool) bool {
	if o == nil {
		return true
	}

	for i := len(o.order) - 1; i >= 0; i-- {
		if !consumer(o.order[i].key, o.order[i].value) {
			return false
		}
	}

	return true
}

// Keys returns the keys of the map in insertion order.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Size())
	o.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)

		return true
	})

	return keys
}

// Values returns the values of the map in insertion order.
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.Size())
	o.ForEach(func(_ K, value V) bool {
		values = append(values, value)

		return true
	})

	return values
}

// Clear removes all elements from the map.
func (o *OrderedMap[K, V]) Clear() {
	o.Initialize()
}

// Clone returns a copy of the map that can be modified without affecting the original.
// Values are copied by assignment, use CloneFunc for values that need a deep copy.
func (o *OrderedMap[K, V]) Clone() (cloned *OrderedMap[K, V]) {
	return o.CloneFunc(func(value V) V { return value })
}

// CloneFunc returns a copy of the map where every value was copied using the given function.
func (o *OrderedMap[K, V]) CloneFunc(cloneValue func(V) V) (cloned *OrderedMap[K, V]) {
	cloned = New[K, V]()
	for key, value := range o.All() {
		cloned.Set(key, cloneValue(value))
	}

	return cloned
}

// Equal returns true if both maps contain the same entries in the same insertion order.
// Maps holding the same entries in a different order are not equal.
func (o *OrderedMap[K, V]) Equal(other *OrderedMap[K, V], valueEqual func(a, b V) bool) bool {
	if o.Size() != other.Size() {
		return false
	}

	for i := range o.Size() {
		if o.order[i].key != other.order[i].key || !valueEqual(o.order[i].value, other.order[i].value) {
			return false
		}
	}

	return true
}

// String returns a human-readable version of the map in the form {key: value, key: value}.
// If any of the entries spans multiple lines, every entry is printed indented on its own line.
func (o *OrderedMap[K, V]) String() string {
	if o.IsEmpty() {
		return "{}"
	}

	entries := make([]string, 0, o.Size())
	newLineVersion := false
	o.ForEach(func(key K, value V) bool {
		entry := fmt.Sprintf("%v: %v", key, value)
		if strings.Contains(entry, "\n") {
			newLineVersion = true
		}
		entries = append(entries, entry)

		return true
	})

	if !newLineVersion {
		return "{" + strings.Join(entries, ", ") + "}"
	}

	return "{\n" + text.Indent(strings.Join(entries, ",\n")+",\n", strings.Repeat(" ", IndentationSize)) + "}"
}

// Equal returns true if both maps contain the same comparable entries in the same insertion order.
func Equal[K, V comparable](a, b *OrderedMap[K, V]) bool {
	return a.Equal(b, func(x, y V) bool { return x == y })
}
