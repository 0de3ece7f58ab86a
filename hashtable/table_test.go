package hashtable_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adp/hashtable"
)

// newIntTable builds an int→string table with identity hashing.
func newIntTable(t *testing.T, opts ...hashtable.Option) *hashtable.Table[int, string] {
	t.Helper()
	tbl, err := hashtable.New[int, string](hashtable.Integer[int], opts...)
	require.NoError(t, err)

	return tbl
}

// storageOrder lists keys in slot order.
func storageOrder[K comparable, V any](tbl *hashtable.Table[K, V]) []K {
	var keys []K
	tbl.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	return keys
}

func TestNew_Validation(t *testing.T) {
	_, err := hashtable.New[int, int](nil)
	assert.ErrorIs(t, err, hashtable.ErrNilHasher)

	_, err = hashtable.New[int, int](hashtable.Integer[int], hashtable.WithCapacity(0))
	assert.ErrorIs(t, err, hashtable.ErrBadCapacity)

	for _, lf := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		_, err = hashtable.New[int, int](hashtable.Integer[int], hashtable.WithLoadFactor(lf))
		assert.ErrorIs(t, err, hashtable.ErrBadLoadFactor, "load factor %v", lf)
	}

	tbl, err := hashtable.New[int, int](hashtable.Integer[int])
	require.NoError(t, err)
	assert.Equal(t, hashtable.DefaultCapacity, tbl.Cap())
	assert.True(t, tbl.IsEmpty())
	assert.Zero(t, tbl.LoadFactor())
}

func TestTable_CongruentKeysForceResize(t *testing.T) {
	tbl := newIntTable(t, hashtable.WithCapacity(4))
	values := map[int]string{4: "Pietersen", 8: "Jakobsen", 12: "Marinus", 16: "Dirksen"}
	for _, k := range []int{4, 8, 12, 16} {
		tbl.Insert(k, values[k])
	}

	assert.GreaterOrEqual(t, tbl.Cap(), 8, "table must have resized at least once")
	assert.Equal(t, 4, tbl.Len())
	for k, want := range values {
		got, err := tbl.Get(k)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestTable_RoundTrip(t *testing.T) {
	tbl := newIntTable(t)
	tbl.Insert(7, "seven")

	got, err := tbl.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "seven", got)

	require.NoError(t, tbl.Delete(7))
	_, err = tbl.Get(7)
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)
	assert.ErrorIs(t, tbl.Delete(7), hashtable.ErrKeyNotFound)
	assert.Equal(t, 0, tbl.Len())
}

func TestTable_InsertOverwrites(t *testing.T) {
	tbl := newIntTable(t)
	tbl.Insert(1, "a")
	tbl.Insert(1, "b")

	assert.Equal(t, 1, tbl.Len())
	v, ok := tbl.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestTable_Update(t *testing.T) {
	tbl := newIntTable(t)
	tbl.Insert(3, "old")

	require.NoError(t, tbl.Update(3, "new"))
	v, err := tbl.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	err = tbl.Update(4, "x")
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)
	assert.False(t, tbl.Contains(4), "Update must never insert")
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_ProbeWrapsAround(t *testing.T) {
	tbl := newIntTable(t, hashtable.WithCapacity(8))
	tbl.Insert(7, "home")
	tbl.Insert(15, "wrapped") // home slot 7 is taken, continues at slot 0

	assert.Equal(t, []int{15, 7}, storageOrder(tbl))
	v, err := tbl.Get(15)
	require.NoError(t, err)
	assert.Equal(t, "wrapped", v)
}

func TestTable_TombstoneKeepsProbeChain(t *testing.T) {
	tbl := newIntTable(t, hashtable.WithCapacity(8))
	tbl.Insert(1, "a")
	tbl.Insert(9, "b")
	tbl.Insert(17, "c")

	require.NoError(t, tbl.Delete(9))
	v, err := tbl.Get(17)
	require.NoError(t, err, "a tombstone must not end the probe")
	assert.Equal(t, "c", v)
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_TombstoneReuseDoesNotDuplicate(t *testing.T) {
	tbl := newIntTable(t, hashtable.WithCapacity(8))
	tbl.Insert(0, "zero")
	tbl.Insert(8, "eight") // slot 1
	require.NoError(t, tbl.Delete(0))

	// 8 lives behind the tombstone at slot 0: overwrite it rather than
	// placing a second copy into the tombstone
	tbl.Insert(8, "EIGHT")
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, []int{8}, storageOrder(tbl))

	// a new key does reclaim the tombstone
	tbl.Insert(16, "sixteen")
	assert.Equal(t, []int{16, 8}, storageOrder(tbl))
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_ResizeDropsTombstones(t *testing.T) {
	tbl := newIntTable(t, hashtable.WithCapacity(4), hashtable.WithLoadFactor(0.5))
	tbl.Insert(1, "a")
	tbl.Insert(2, "b")
	require.NoError(t, tbl.Delete(1))
	tbl.Insert(3, "c") // count 1 -> 2 fits 4*0.5
	tbl.Insert(5, "d") // count 3 > 2 forces a resize to 8

	assert.Equal(t, 8, tbl.Cap())
	assert.Equal(t, 3, tbl.Len())
	assert.False(t, tbl.Contains(1))
	assert.Equal(t, []int{2, 3, 5}, storageOrder(tbl))
}

func TestTable_TinyCapacityGrows(t *testing.T) {
	tbl := newIntTable(t, hashtable.WithCapacity(1), hashtable.WithLoadFactor(0.25))
	tbl.Insert(42, "x")

	assert.Equal(t, 4, tbl.Cap())
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_NegativeKeys(t *testing.T) {
	tbl := newIntTable(t)
	for k := -50; k < 50; k++ {
		tbl.Insert(k, fmt.Sprint(k))
	}
	for k := -50; k < 50; k++ {
		v, err := tbl.Get(k)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprint(k), v)
	}
}

// Random mixes of operations must agree with a Go map and keep the load
// factor at or below the threshold after every insert.
func TestTable_RandomAgainstMap(t *testing.T) {
	const lf = 0.75
	r := rand.New(rand.NewSource(11))
	tbl := newIntTable(t, hashtable.WithCapacity(2), hashtable.WithLoadFactor(lf))
	ref := make(map[int]string)

	for step := 0; step < 20000; step++ {
		k := r.Intn(300)
		switch r.Intn(4) {
		case 0:
			err := tbl.Delete(k)
			if _, ok := ref[k]; ok {
				require.NoError(t, err)
				delete(ref, k)
			} else {
				require.ErrorIs(t, err, hashtable.ErrKeyNotFound)
			}
		case 1:
			v, err := tbl.Get(k)
			if want, ok := ref[k]; ok {
				require.NoError(t, err)
				require.Equal(t, want, v)
			} else {
				require.ErrorIs(t, err, hashtable.ErrKeyNotFound)
			}
		default:
			v := fmt.Sprintf("%d@%d", k, step)
			tbl.Insert(k, v)
			ref[k] = v
			require.LessOrEqual(t, float64(tbl.Len()), float64(tbl.Cap())*lf, "step %d", step)
		}
		require.Equal(t, len(ref), tbl.Len(), "step %d", step)
	}

	seen := 0
	tbl.Range(func(k int, v string) bool {
		seen++
		assert.Equal(t, ref[k], v)
		return true
	})
	assert.Equal(t, len(ref), seen)
}

func TestTable_StringKeys(t *testing.T) {
	tbl, err := hashtable.New[string, []int](hashtable.String)
	require.NoError(t, err)

	data := map[string][]int{"a": {1, 2}, "b": {3}, "abc": {}, "": {9}}
	for k, v := range data {
		tbl.Insert(k, v)
	}
	for k, want := range data {
		got, err := tbl.Get(k)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err = tbl.Get("nonExistingKey")
	assert.ErrorIs(t, err, hashtable.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "nonExistingKey")
}

func TestTable_RangeStopsEarly(t *testing.T) {
	tbl := newIntTable(t)
	for k := 0; k < 5; k++ {
		tbl.Insert(k, "v")
	}
	n := 0
	tbl.Range(func(int, string) bool {
		n++
		return n < 2
	})
	assert.Equal(t, 2, n)
}

func TestHashers(t *testing.T) {
	assert.Equal(t, uint64(4), hashtable.Integer(4))
	assert.Equal(t, uint64(255), hashtable.Integer[uint8](255))

	assert.Equal(t, hashtable.Float(0.0), hashtable.Float(math.Copysign(0, -1)))
	assert.Equal(t, hashtable.Float(1.5), hashtable.Float(1.5))
	assert.NotEqual(t, hashtable.Float(1.5), hashtable.Float(2.5))
	assert.Equal(t, hashtable.Float[float32](1.5), hashtable.Float(1.5))

	assert.Equal(t, hashtable.String("key"), hashtable.String("key"))
	assert.NotEqual(t, hashtable.String("key"), hashtable.String("yek"))
}
