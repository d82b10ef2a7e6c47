package queue

import (
	"testing"

	"github.com/gostonefire/adt/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("removes in FIFO order", func(t *testing.T) {
		// Prepare
		q := New[int]()
		for i := 1; i <= 20; i++ {
			q.AddTail(i)
		}

		// Execute
		var got []int
		for !q.IsEmpty() {
			v, err := q.RemoveFront()
			require.NoError(t, err)
			got = append(got, v)
		}

		// Check
		for i, v := range got {
			assert.Equal(t, i+1, v, "FIFO position %d", i)
		}
		assert.Len(t, got, 20, "all removed")
		assert.True(t, q.RemoveFrontStatus().IsOk(), "remove front status ok")
	})

	t.Run("get front leaves the queue as is", func(t *testing.T) {
		// Prepare
		q := New[string]()
		q.AddTail("a")
		q.AddTail("b")

		// Execute
		v, err := q.GetFront()

		// Check
		assert.NoError(t, err, "get front")
		assert.Equal(t, "a", v, "front")
		assert.Equal(t, 2, q.Size(), "size unchanged")
		assert.True(t, q.GetFrontStatus().IsOk(), "get front status ok")
	})

	t.Run("front operations on empty queue fail", func(t *testing.T) {
		// Prepare
		q := New[int]()

		// Execute
		_, errRemove := q.RemoveFront()
		_, errGet := q.GetFront()

		// Check
		assert.ErrorIs(t, errRemove, status.Empty{}, "remove front empty")
		assert.ErrorIs(t, errGet, status.Empty{}, "get front empty")
		assert.True(t, q.RemoveFrontStatus().IsErr(), "remove front status err")
		assert.True(t, q.GetFrontStatus().IsErr(), "get front status err")
	})

	t.Run("clear resets elements and statuses", func(t *testing.T) {
		// Prepare
		q := New[int]()
		q.AddTail(1)
		_, _ = q.GetFront()
		_, _ = q.RemoveFront()

		// Execute
		q.Clear()

		// Check
		assert.True(t, q.IsEmpty(), "empty")
		assert.True(t, q.RemoveFrontStatus().IsNil(), "remove front status reset")
		assert.True(t, q.GetFrontStatus().IsNil(), "get front status reset")
	})
}

func TestDeque(t *testing.T) {
	t.Run("front and tail are symmetric", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		d.AddFront(2)
		d.AddFront(1)
		d.AddTail(3)

		// Execute
		front, errFront := d.GetFront()
		tail, errTail := d.GetTail()

		// Check
		assert.NoError(t, errFront)
		assert.NoError(t, errTail)
		assert.Equal(t, 1, front, "front")
		assert.Equal(t, 3, tail, "tail")
		assert.Equal(t, []int{1, 2, 3}, d.Values(), "order")
	})

	t.Run("used as a stack from the tail", func(t *testing.T) {
		// Prepare
		d := NewDeque[string]()
		for _, v := range []string{"a", "b", "c"} {
			d.AddTail(v)
		}

		// Execute
		var got []string
		for d.Size() > 0 {
			v, err := d.RemoveTail()
			require.NoError(t, err)
			got = append(got, v)
		}

		// Check
		assert.Equal(t, []string{"c", "b", "a"}, got, "LIFO from the tail")
		assert.True(t, d.RemoveTailStatus().IsOk(), "remove tail status ok")
	})

	t.Run("tail operations on empty deque fail", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()

		// Execute
		_, errRemove := d.RemoveTail()
		_, errGet := d.GetTail()

		// Check
		assert.ErrorIs(t, errRemove, status.Empty{}, "remove tail empty")
		assert.ErrorIs(t, errGet, status.Empty{}, "get tail empty")
		assert.True(t, d.GetTailStatus().IsErr(), "get tail status err")
	})

	t.Run("clear resets all four statuses", func(t *testing.T) {
		// Prepare
		d := NewDeque[int]()
		_, _ = d.RemoveFront()
		_, _ = d.GetFront()
		_, _ = d.RemoveTail()
		_, _ = d.GetTail()

		// Execute
		d.Clear()

		// Check
		assert.True(t, d.RemoveFrontStatus().IsNil(), "remove front status reset")
		assert.True(t, d.GetFrontStatus().IsNil(), "get front status reset")
		assert.True(t, d.RemoveTailStatus().IsNil(), "remove tail status reset")
		assert.True(t, d.GetTailStatus().IsNil(), "get tail status reset")
	})

	t.Run("deque is a parent queue", func(t *testing.T) {
		// Prepare
		var q ParentQueue[int] = NewDeque[int]()

		// Execute
		q.AddTail(5)
		v, err := q.RemoveFront()

		// Check
		assert.NoError(t, err)
		assert.Equal(t, 5, v, "front")
	})
}
