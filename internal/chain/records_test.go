package chain

import (
	"fmt"
	"testing"

	"github.com/gostonefire/adt/internal/model"
	"github.com/gostonefire/adt/status"
	"github.com/stretchr/testify/assert"
)

func bucketsFunc(buckets [][]int) func(int64) (model.Bucket[int], error) {
	return func(bucketNo int64) (model.Bucket[int], error) {
		if bucketNo < 0 || bucketNo >= int64(len(buckets)) {
			return model.Bucket[int]{}, fmt.Errorf("no bucket %d", bucketNo)
		}
		return model.Bucket[int]{BucketNo: bucketNo, Records: buckets[bucketNo]}, nil
	}
}

func TestRecords(t *testing.T) {
	t.Run("walks buckets ascending skipping empty ones", func(t *testing.T) {
		// Prepare
		buckets := [][]int{{}, {1, 5}, {}, {}, {4}, {2, 6, 10}, {}}
		iter := NewRecords(bucketsFunc(buckets), int64(len(buckets)))

		// Execute
		var got []int
		for iter.HasNext() {
			r, err := iter.Next()
			assert.NoError(t, err, "gets next record")
			got = append(got, r)
		}

		// Check
		assert.Equal(t, []int{1, 5, 4, 2, 6, 10}, got, "bucket order then insertion order")
	})

	t.Run("returns not found when exhausted", func(t *testing.T) {
		// Prepare
		buckets := [][]int{{7}}
		iter := NewRecords(bucketsFunc(buckets), 1)
		_, _ = iter.Next()

		// Execute
		_, err := iter.Next()

		// Check
		assert.ErrorIs(t, err, status.NotFound{}, "no more records")
		assert.False(t, iter.HasNext(), "still exhausted")
	})

	t.Run("empty table has nothing", func(t *testing.T) {
		// Prepare
		iter := NewRecords(bucketsFunc([][]int{{}, {}}), 2)

		// Check
		assert.False(t, iter.HasNext(), "no records")
	})

	t.Run("stops on bucket error", func(t *testing.T) {
		// Prepare
		iter := NewRecords(bucketsFunc([][]int{{1}}), 3)

		// Execute
		r, err := iter.Next()

		// Check
		assert.NoError(t, err, "first bucket readable")
		assert.Equal(t, 1, r, "record")
		assert.False(t, iter.HasNext(), "bucket 1 can't be read")
	})
}
