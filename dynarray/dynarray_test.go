package dynarray

import (
	"testing"

	"github.com/gostonefire/adt/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates an empty array with capacity 16", func(t *testing.T) {
		// Execute
		d := New[int]()

		// Check
		assert.Equal(t, 0, d.Count(), "empty")
		assert.Equal(t, 16, d.Capacity(), "initial capacity")
		assert.True(t, d.AppendStatus().IsNil(), "append never called")
		assert.True(t, d.InsertStatus().IsNil(), "insert never called")
		assert.True(t, d.RemoveStatus().IsNil(), "remove never called")
		assert.True(t, d.GetStatus().IsNil(), "get never called")
		assert.True(t, d.PutStatus().IsNil(), "put never called")
	})
}

func TestDynArray_Append(t *testing.T) {
	t.Run("grows by doubling", func(t *testing.T) {
		// Prepare
		d := New[int]()

		for n := 1; n <= 300; n++ {
			// Execute
			d.Append(n)

			// Check
			require.Equal(t, n, d.Count(), "count follows appends")
			require.GreaterOrEqual(t, d.Capacity(), n, "capacity covers count")
			c := d.Capacity()
			for c > 16 {
				require.Equal(t, 0, c%2, "capacity is 16 times a power of two")
				c /= 2
			}
			require.Equal(t, 16, c, "capacity is 16 times a power of two")
		}
		assert.Equal(t, 512, d.Capacity(), "300 elements need 512 slots")
		assert.True(t, d.AppendStatus().IsOk(), "append status ok")

		for i := 0; i < 300; i++ {
			v, err := d.Get(i)
			require.NoError(t, err, "gets element")
			require.Equal(t, i+1, v, "element preserved across growth")
		}
	})

	t.Run("grows exactly when full", func(t *testing.T) {
		// Prepare
		d := New[string]()
		for i := 0; i < 16; i++ {
			d.Append("x")
		}
		assert.Equal(t, 16, d.Capacity(), "still 16 when exactly full")

		// Execute
		d.Append("y")

		// Check
		assert.Equal(t, 32, d.Capacity(), "doubled")
		assert.Equal(t, 17, d.Count(), "count")
	})
}

func TestDynArray_Insert(t *testing.T) {
	t.Run("inserts and shifts right", func(t *testing.T) {
		// Prepare
		d := New[int]()
		d.Append(1)
		d.Append(3)

		// Execute
		err := d.Insert(2, 1)

		// Check
		assert.NoError(t, err, "inserts")
		assert.True(t, d.InsertStatus().IsOk(), "insert status ok")
		assert.Equal(t, []int{1, 2, 3}, d.Values(), "shifted")
	})

	t.Run("inserts at count, i.e. appends", func(t *testing.T) {
		// Prepare
		d := New[int]()
		d.Append(1)

		// Execute
		err := d.Insert(2, 1)

		// Check
		assert.NoError(t, err, "inserts at end")
		assert.Equal(t, []int{1, 2}, d.Values(), "appended")
	})

	t.Run("grows when full", func(t *testing.T) {
		// Prepare
		d := New[int]()
		for i := 0; i < 16; i++ {
			d.Append(i)
		}

		// Execute
		err := d.Insert(-1, 0)

		// Check
		assert.NoError(t, err, "inserts")
		assert.Equal(t, 32, d.Capacity(), "grown")
		assert.Equal(t, 17, d.Count(), "count")
		v, _ := d.Get(0)
		assert.Equal(t, -1, v, "inserted at front")
		v, _ = d.Get(16)
		assert.Equal(t, 15, v, "last element shifted")
	})

	t.Run("fails out of range and leaves array unchanged", func(t *testing.T) {
		// Prepare
		d := New[int]()
		d.Append(1)

		for _, index := range []int{-1, 2, 100} {
			// Execute
			err := d.Insert(9, index)

			// Check
			assert.ErrorIs(t, err, status.OutOfRange{}, "out of range")
			assert.True(t, d.InsertStatus().IsErr(), "insert status err")
			assert.Equal(t, []int{1}, d.Values(), "unchanged")
		}
	})
}

func TestDynArray_RemoveAt(t *testing.T) {
	t.Run("removes and shifts left", func(t *testing.T) {
		// Prepare
		d := New[string]()
		d.Append("a")
		d.Append("b")
		d.Append("c")

		// Execute
		v, err := d.RemoveAt(1)

		// Check
		assert.NoError(t, err, "removes")
		assert.Equal(t, "b", v, "removed value returned")
		assert.True(t, d.RemoveStatus().IsOk(), "remove status ok")
		assert.Equal(t, []string{"a", "c"}, d.Values(), "shifted")
	})

	t.Run("removes from a completely full buffer", func(t *testing.T) {
		// Prepare
		d := New[int]()
		for i := 0; i < 16; i++ {
			d.Append(i)
		}

		// Execute
		v, err := d.RemoveAt(15)

		// Check
		assert.NoError(t, err, "removes last")
		assert.Equal(t, 15, v, "removed value")
		assert.Equal(t, 15, d.Count(), "count")
	})

	t.Run("shrinks by 1.5 below half capacity", func(t *testing.T) {
		// Prepare
		d := New[int]()
		for i := 0; i < 17; i++ {
			d.Append(i)
		}
		require.Equal(t, 32, d.Capacity(), "grown to 32")

		// Execute and Check
		_, err := d.RemoveAt(0)
		require.NoError(t, err, "removes")
		assert.Equal(t, 32, d.Capacity(), "16 of 32 is not below half")

		_, err = d.RemoveAt(0)
		require.NoError(t, err, "removes")
		assert.Equal(t, 21, d.Capacity(), "15 of 32 shrinks to 21")

		for d.Count() > 9 {
			_, err = d.RemoveAt(0)
			require.NoError(t, err, "removes")
		}
		assert.Equal(t, 16, d.Capacity(), "9 of 21 shrinks to 14, floored at 16")
		assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14, 15, 16}, d.Values(), "elements preserved across shrink")
	})

	t.Run("capacity never drops below 16 or count", func(t *testing.T) {
		// Prepare
		d := New[int]()
		for i := 0; i < 1000; i++ {
			d.Append(i)
		}

		for d.Count() > 0 {
			// Execute
			_, err := d.RemoveAt(d.Count() / 2)

			// Check
			require.NoError(t, err, "removes")
			require.GreaterOrEqual(t, d.Capacity(), d.Count(), "capacity covers count")
			require.GreaterOrEqual(t, d.Capacity(), 16, "capacity floor")
		}
		assert.Equal(t, 16, d.Capacity(), "back to 16 when empty")
	})

	t.Run("fails out of range", func(t *testing.T) {
		// Prepare
		d := New[int]()

		// Execute
		v, err := d.RemoveAt(0)

		// Check
		assert.ErrorIs(t, err, status.OutOfRange{}, "out of range")
		assert.Equal(t, 0, v, "zero value")
		assert.True(t, d.RemoveStatus().IsErr(), "remove status err")
		assert.Equal(t, 0, d.Count(), "unchanged")
	})
}

func TestDynArray_Get(t *testing.T) {
	t.Run("gets element", func(t *testing.T) {
		// Prepare
		d := New[string]()
		d.Append("a")

		// Execute
		v, err := d.Get(0)

		// Check
		assert.NoError(t, err, "gets")
		assert.Equal(t, "a", v, "value")
		assert.True(t, d.GetStatus().IsOk(), "get status ok")
	})

	t.Run("fails out of range with zero value", func(t *testing.T) {
		// Prepare
		d := New[string]()
		d.Append("a")

		for _, index := range []int{-1, 1} {
			// Execute
			v, err := d.Get(index)

			// Check
			assert.ErrorIs(t, err, status.OutOfRange{}, "out of range")
			assert.Equal(t, "", v, "zero value")
			assert.True(t, d.GetStatus().IsErr(), "get status err")
		}
	})

	t.Run("status follows the last call", func(t *testing.T) {
		// Prepare
		d := New[int]()
		d.Append(1)

		// Execute
		_, _ = d.Get(5)
		_, _ = d.Get(0)

		// Check
		assert.True(t, d.GetStatus().IsOk(), "latest call wins")
	})
}

func TestDynArray_Put(t *testing.T) {
	t.Run("replaces in place", func(t *testing.T) {
		// Prepare
		d := New[int]()
		d.Append(1)
		d.Append(2)

		// Execute
		err := d.Put(20, 1)

		// Check
		assert.NoError(t, err, "puts")
		assert.True(t, d.PutStatus().IsOk(), "put status ok")
		assert.Equal(t, []int{1, 20}, d.Values(), "replaced")
		assert.Equal(t, 2, d.Count(), "count unchanged")
	})

	t.Run("fails at count", func(t *testing.T) {
		// Prepare
		d := New[int]()
		d.Append(1)

		// Execute
		err := d.Put(2, 1)

		// Check
		assert.ErrorIs(t, err, status.OutOfRange{}, "out of range")
		assert.True(t, d.PutStatus().IsErr(), "put status err")
	})
}

func TestDynArray_Clear(t *testing.T) {
	t.Run("resets to an empty array of 16", func(t *testing.T) {
		// Prepare
		d := New[int]()
		for i := 0; i < 100; i++ {
			d.Append(i)
		}

		// Execute
		d.Clear()

		// Check
		assert.Equal(t, 0, d.Count(), "empty")
		assert.Equal(t, 16, d.Capacity(), "initial capacity")
		assert.Empty(t, d.Values(), "no values")
	})
}
