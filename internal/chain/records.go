package chain

import (
	"fmt"

	"github.com/gostonefire/adt/internal/model"
	"github.com/gostonefire/adt/status"
)

// Records - Is used to iterate over the records of all buckets one by one, bucket number ascending and
// insertion order within a bucket.
type Records[T any] struct {
	getBucketFunc   func(int64) (model.Bucket[T], error)
	numberOfBuckets int64
	bucketNo        int64
	records         []T
	index           int
}

// NewRecords - Returns a pointer to a new Records struct
//   - getBucketFunc is called once per bucket to fetch its records
//   - numberOfBuckets is the number of buckets to walk, starting from bucket 0 (zero)
func NewRecords[T any](getBucketFunc func(int64) (model.Bucket[T], error), numberOfBuckets int64) *Records[T] {
	return &Records[T]{
		getBucketFunc:   getBucketFunc,
		numberOfBuckets: numberOfBuckets,
		bucketNo:        -1,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records[T]) HasNext() bool {
	if R.index < len(R.records) {
		return true
	}

	// Advance to the next non-empty bucket
	for R.bucketNo+1 < R.numberOfBuckets {
		R.bucketNo++
		bucket, err := R.getBucketFunc(R.bucketNo)
		if err != nil {
			return false
		}
		if len(bucket.Records) > 0 {
			R.records = bucket.Records
			R.index = 0
			return true
		}
	}

	return false
}

// Next - Returns record.
// It returns:
//   - record is the next record.
//   - err is of type status.NotFound if there are no more records when calling this function.
func (R *Records[T]) Next() (record T, err error) {
	if !R.HasNext() {
		err = status.NewNotFound(fmt.Sprintf("no more records after bucket %d", R.bucketNo))
		return
	}

	record = R.records[R.index]
	R.index++

	return
}
