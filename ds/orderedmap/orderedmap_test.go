package orderedmap_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/tools/ds/orderedmap"
	"github.com/iotaledger/tools/placeholder"
)

func TestNew(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()
	require.NotNil(t, orderedMap)

	require.Equal(t, 0, orderedMap.Size())
	require.True(t, orderedMap.IsEmpty())

	_, _, exists := orderedMap.Head()
	require.False(t, exists)

	_, _, exists = orderedMap.Tail()
	require.False(t, exists)
}

func TestOrderedMap_Size(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()

	orderedMap.Set(1, 1)
	require.Equal(t, 1, orderedMap.Size())

	orderedMap.Set(3, 1)
	orderedMap.Set(2, 1)
	require.Equal(t, 3, orderedMap.Size())
	require.False(t, orderedMap.IsEmpty())

	// re-inserting an existing key does not grow the map
	orderedMap.Set(2, 2)
	require.Equal(t, 3, orderedMap.Size())

	orderedMap.Clear()
	require.Equal(t, 0, orderedMap.Size())
	require.True(t, orderedMap.IsEmpty())
}

func TestSetGet(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()

	require.True(t, orderedMap.Set("a", 1))
	require.True(t, orderedMap.Set("b", 2))

	// the duplicate is rejected and the stored value stays untouched
	require.False(t, orderedMap.Set("a", 9))
	require.Equal(t, 2, orderedMap.Size())

	value, exists := orderedMap.Get("a")
	require.True(t, exists)
	require.Equal(t, 1, value)

	value, exists = orderedMap.Get("c")
	require.False(t, exists)
	require.Zero(t, value)

	require.True(t, orderedMap.Has("b"))
	require.False(t, orderedMap.Has("c"))

	require.Equal(t, []string{"a", "b"}, orderedMap.Keys())
	require.Equal(t, []int{1, 2}, orderedMap.Values())

	k, v, exists := orderedMap.Head()
	require.True(t, exists)
	require.Equal(t, "a", k)
	require.Equal(t, 1, v)

	k, v, exists = orderedMap.Tail()
	require.True(t, exists)
	require.Equal(t, "b", k)
	require.Equal(t, 2, v)

	require.Equal(t, "{a: 1, b: 2}", orderedMap.String())
}

func TestZeroValue(t *testing.T) {
	var orderedMap orderedmap.OrderedMap[string, int]

	require.True(t, orderedMap.IsEmpty())
	require.Equal(t, "{}", orderedMap.String())

	require.True(t, orderedMap.Set("a", 1))
	require.Equal(t, 1, orderedMap.Size())
}

func TestNilMap(t *testing.T) {
	var orderedMap *orderedmap.OrderedMap[string, int]

	require.Equal(t, 0, orderedMap.Size())
	require.False(t, orderedMap.Has("a"))
	require.Equal(t, "{}", orderedMap.String())
	require.True(t, orderedMap.ForEach(func(string, int) bool { return false }))

	_, exists := orderedMap.Get("a")
	require.False(t, exists)

	_, exists = orderedMap.GetMutable("a")
	require.False(t, exists)
}

func TestGetMutable(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()
	orderedMap.Set("a", 1)
	orderedMap.Set("b", 2)

	value, exists := orderedMap.GetMutable("a")
	require.True(t, exists)
	*value = 10

	require.True(t, orderedMap.Update("b", func(value *int) { *value *= 10 }))
	require.False(t, orderedMap.Update("c", func(*int) { require.Fail(t, "update called for unknown key") }))

	_, exists = orderedMap.GetMutable("c")
	require.False(t, exists)

	// the modifications are visible through iteration without reordering or duplicating the entries
	require.Equal(t, 2, orderedMap.Size())
	require.Equal(t, []string{"a", "b"}, orderedMap.Keys())
	require.Equal(t, []int{10, 20}, orderedMap.Values())

	current, _ := orderedMap.Get("a")
	require.Equal(t, 10, current)
}

func TestIteration(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()

	keys := []string{"one", "two", "three"}
	values := []int{1, 2, 3}

	for i := range keys {
		orderedMap.Set(keys[i], values[i])
	}

	var iteratedKeys []string
	var iteratedValues []int
	for key, value := range orderedMap.All() {
		iteratedKeys = append(iteratedKeys, key)
		iteratedValues = append(iteratedValues, value)
	}
	require.Equal(t, keys, iteratedKeys)
	require.Equal(t, values, iteratedValues)

	// iterators are restartable and don't consume the map
	var secondRun []string
	for key := range orderedMap.All() {
		secondRun = append(secondRun, key)
	}
	require.Equal(t, keys, secondRun)

	var reversedKeys []string
	for key := range orderedMap.Backward() {
		reversedKeys = append(reversedKeys, key)
	}
	require.Equal(t, []string{"three", "two", "one"}, reversedKeys)

	// iteration can be aborted early
	var firstOnly []string
	for key := range orderedMap.All() {
		firstOnly = append(firstOnly, key)
		break
	}
	require.Equal(t, []string{"one"}, firstOnly)

	require.True(t, orderedMap.ForEach(func(key string, value int) bool {
		return value > 0
	}))
	require.False(t, orderedMap.ForEach(func(key string, value int) bool {
		return value < 0
	}))

	var reversedValues []int
	require.True(t, orderedMap.ForEachReverse(func(key string, value int) bool {
		reversedValues = append(reversedValues, value)

		return true
	}))
	require.Equal(t, []int{3, 2, 1}, reversedValues)
}

func TestClone(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()
	orderedMap.Set("a", 1)
	orderedMap.Set("b", 2)

	clone := orderedMap.Clone()
	require.True(t, orderedmap.Equal(orderedMap, clone))

	clone.Set("c", 3)
	require.False(t, orderedMap.Has("c"))
	require.False(t, orderedmap.Equal(orderedMap, clone))

	orderedMap.Set("d", 4)
	require.False(t, clone.Has("d"))

	clone.Update("a", func(value *int) { *value = 100 })
	original, _ := orderedMap.Get("a")
	require.Equal(t, 1, original)

	clone.Clear()
	require.True(t, clone.IsEmpty())
	require.Equal(t, 3, orderedMap.Size())
}

func TestCloneFunc(t *testing.T) {
	orderedMap := orderedmap.New[string, []int]()
	orderedMap.Set("a", []int{1, 2})

	clone := orderedMap.CloneFunc(slices.Clone[[]int])

	value, _ := clone.GetMutable("a")
	(*value)[0] = 100

	original, _ := orderedMap.Get("a")
	require.Equal(t, []int{1, 2}, original)
	require.True(t, orderedMap.Equal(orderedMap.Clone(), slices.Equal[[]int]))
	require.False(t, orderedMap.Equal(clone, slices.Equal[[]int]))
}

func TestEqual(t *testing.T) {
	a := orderedmap.New[string, int]()
	a.Set("a", 1)
	a.Set("b", 2)

	b := orderedmap.New[string, int]()
	b.Set("a", 1)
	b.Set("b", 2)

	// same entries in a different order are not equal
	c := orderedmap.New[string, int]()
	c.Set("b", 2)
	c.Set("a", 1)

	d := orderedmap.New[string, int]()
	d.Set("a", 1)
	d.Set("b", 3)

	require.True(t, orderedmap.Equal(a, b))
	require.True(t, orderedmap.Equal(b, a))
	require.False(t, orderedmap.Equal(a, c))
	require.False(t, orderedmap.Equal(a, d))
	require.False(t, orderedmap.Equal(a, orderedmap.New[string, int]()))
	require.True(t, orderedmap.Equal(orderedmap.New[string, int](), orderedmap.New[string, int]()))

	a.Clear()
	b.Clear()
	require.True(t, orderedmap.Equal(a, b))
}

func TestString(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()
	require.Equal(t, "{}", orderedMap.String())

	orderedMap.Set("b", 2)
	orderedMap.Set("a", 1)
	require.Equal(t, "{b: 2, a: 1}", orderedMap.String())
	require.Equal(t, "{b: 2, a: 1}", fmt.Sprint(orderedMap))

	orderedMap.Clear()
	require.Equal(t, "{}", orderedMap.String())

	multiLine := orderedmap.New[string, string]()
	multiLine.Set("k", "x\ny")
	multiLine.Set("j", "z")
	require.Equal(t, "{\n    k: x\n    y,\n    j: z,\n}", multiLine.String())
}

func TestExampleScenario(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()

	require.True(t, orderedMap.Set("a", 1))
	require.True(t, orderedMap.Set("b", 2))
	require.False(t, orderedMap.Set("a", 9))

	require.Equal(t, 2, orderedMap.Size())

	value, exists := orderedMap.Get("a")
	require.True(t, exists)
	require.Equal(t, 1, value)

	type pair struct {
		key   string
		value int
	}

	var forward []pair
	for key, value := range orderedMap.All() {
		forward = append(forward, pair{key, value})
	}
	require.Equal(t, []pair{{"a", 1}, {"b", 2}}, forward)

	var backward []pair
	for key, value := range orderedMap.Backward() {
		backward = append(backward, pair{key, value})
	}
	require.Equal(t, []pair{{"b", 2}, {"a", 1}}, backward)

	require.Equal(t, "{a: 1, b: 2}", orderedMap.String())
}

func TestRandomInsertions(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for run := range 20 {
		orderedMap := orderedmap.New[int, int]()
		oracle := linkedhashmap.New()
		firstValues := make(map[int]int)

		for i := range 200 {
			key := random.Intn(50)

			_, existed := oracle.Get(key)
			if !existed {
				oracle.Put(key, i)
				firstValues[key] = i
			}

			require.Equal(t, !existed, orderedMap.Set(key, i), "run %d, insertion %d", run, i)
		}

		require.Equal(t, oracle.Size(), orderedMap.Size())

		expectedKeys := make([]int, 0, oracle.Size())
		for _, key := range oracle.Keys() {
			expectedKeys = append(expectedKeys, key.(int))
		}
		require.Equal(t, expectedKeys, orderedMap.Keys())

		expectedValues := make([]int, 0, oracle.Size())
		for _, value := range oracle.Values() {
			expectedValues = append(expectedValues, value.(int))
		}
		require.Equal(t, expectedValues, orderedMap.Values())

		for key, value := range firstValues {
			stored, exists := orderedMap.Get(key)
			require.True(t, exists)
			require.Equal(t, value, stored)
		}

		var reversed []int
		for key := range orderedMap.Backward() {
			reversed = append(reversed, key)
		}
		slices.Reverse(expectedKeys)
		require.Equal(t, expectedKeys, reversed)
	}
}

func TestPlaceholderFixture(t *testing.T) {
	keys := placeholder.Sequence("x", "y", "z")
	var values placeholder.Factory[int] = func(seed int) int { return seed * seed }

	fixture := placeholder.OrderedMap(keys, values, 5)

	// seeds 3 and 4 wrap around to existing keys and are rejected
	require.Equal(t, 3, fixture.Size())
	require.Equal(t, "{x: 0, y: 1, z: 4}", fixture.String())
}
