package hashtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict_Basic(t *testing.T) {
	d, err := NewDict[string, int](17)
	require.NoError(t, err)

	_, err = d.Put("foo", 42)
	require.NoError(t, err)

	v, ok := d.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, d.Has("foo"))

	_, ok = d.Get("bar")
	assert.False(t, ok)
	assert.False(t, d.Has("bar"))

	require.True(t, d.Remove("foo"))
	_, ok = d.Get("foo")
	assert.False(t, ok)
	assert.False(t, d.Remove("foo"))
}

func TestDict_Overwrite(t *testing.T) {
	d, err := NewDict[string, int](17)
	require.NoError(t, err)

	slot, err := d.Put("key1", 320)
	require.NoError(t, err)

	again, err := d.Put("key1", 999)
	require.NoError(t, err)
	require.Equal(t, slot, again)

	v, ok := d.Get("key1")
	require.True(t, ok)
	assert.Equal(t, 999, v)
	assert.Equal(t, 1, d.Len())
}

func TestDict_SeedAndSkip(t *testing.T) {
	seed := []Pair[string, any]{
		{"key1", 320},
		{"key2", 6.43},
		{"key3", "s"},
		{"key4", true},
		{"key5", "hello"},
		{"key6", -10.2},
	}

	d, err := NewDict[string, any](17, WithSkip[string, any](3), WithPairs(seed...))
	require.NoError(t, err)
	require.Equal(t, 6, d.Len())
	require.False(t, d.IsEmpty())

	for _, p := range seed {
		v, ok := d.Get(p.Key)
		require.True(t, ok, "missing %q", p.Key)
		require.Equal(t, p.Value, v)
	}

	assert.False(t, d.Has("key0"))
	assert.InDelta(t, 6.0/17.0, d.LoadFactor(), 1e-12)
}

func TestDict_SlotAlignedEnumeration(t *testing.T) {
	d, err := NewDict[string, int](13)
	require.NoError(t, err)

	want := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}
	for k, v := range want {
		_, err := d.Put(k, v)
		require.NoError(t, err)
	}

	entries := d.Entries()
	keys := d.Keys()
	values := d.Values()
	require.Len(t, entries, len(want))
	require.Len(t, keys, len(want))
	require.Len(t, values, len(want))

	// Keys and Values walk slots in the same order, so position i of both
	// is entry i.
	for i, e := range entries {
		require.Equal(t, e.Key, keys[i])
		require.Equal(t, e.Value, values[i])
		require.Equal(t, want[e.Key], e.Value)
	}
}

func TestDict_Full(t *testing.T) {
	d, err := NewDict[int, int](3)
	require.NoError(t, err)

	for i := range 3 {
		_, err := d.Put(i, i*10)
		require.NoError(t, err)
	}

	_, err = d.Put(99, 990)
	require.ErrorIs(t, err, ErrTableFull)

	// Failed put is a no-op.
	require.Equal(t, 3, d.Len())
	assert.False(t, d.Has(99))

	// Overwriting an existing key still works on a full dictionary.
	_, err = d.Put(1, 111)
	require.NoError(t, err)
	v, _ := d.Get(1)
	assert.Equal(t, 111, v)
}

func TestDict_RemoveThenReput(t *testing.T) {
	d, err := NewDict[string, int](17)
	require.NoError(t, err)

	slot, err := d.Put("k", 1)
	require.NoError(t, err)
	require.True(t, d.Remove("k"))

	// The vacated slot is tombstoned, never reused, so the key comes back
	// at a different slot with the fresh value.
	again, err := d.Put("k", 2)
	require.NoError(t, err)
	require.NotEqual(t, slot, again)

	v, ok := d.Get("k")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, d.Len())
}

func TestDict_Resize(t *testing.T) {
	d, err := NewDict[string, int](17, WithSkip[string, int](3))
	require.NoError(t, err)

	for _, p := range []Pair[string, int]{
		{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	} {
		_, err := d.Put(p.Key, p.Value)
		require.NoError(t, err)
	}
	require.True(t, d.Remove("four"))

	resized, err := d.Resize(13, 1)
	require.NoError(t, err)
	require.Equal(t, 13, resized.Size())
	require.Equal(t, 4, resized.Len())

	for _, k := range []string{"one", "two", "three", "five"} {
		require.True(t, resized.Has(k), "lost %q in resize", k)
	}
	assert.False(t, resized.Has("four"))

	// The rebuild dropped the tombstone along with the capacity change.
	assert.Zero(t, resized.Stats().Tombstones)

	_, err = d.Resize(2, 1)
	assert.ErrorIs(t, err, ErrTableFull)
}

func TestDict_Clear(t *testing.T) {
	d, err := NewDict[string, int](17, WithPairs(Pair[string, int]{"a", 1}, Pair[string, int]{"b", 2}))
	require.NoError(t, err)

	d.Clear()

	require.True(t, d.IsEmpty())
	require.Zero(t, d.Len())
	require.Zero(t, d.LoadFactor())
	require.Empty(t, d.Entries())
	_, ok := d.Get("a")
	require.False(t, ok)

	// Usable after clearing.
	_, err = d.Put("a", 9)
	require.NoError(t, err)
	v, _ := d.Get("a")
	require.Equal(t, 9, v)
}

func TestDict_InvalidConfig(t *testing.T) {
	_, err := NewDict[string, int](0)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewDict[string, int](17, WithSkip[string, int](0))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDict_SeedOverflow(t *testing.T) {
	_, err := NewDict[int, int](2, WithPairs(
		Pair[int, int]{1, 1}, Pair[int, int]{2, 2}, Pair[int, int]{3, 3},
	))
	assert.ErrorIs(t, err, ErrTableFull)
}
