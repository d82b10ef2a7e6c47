package hashtable

import (
	"fmt"

	"github.com/gostonefire/adt/internal/model"
	"github.com/gostonefire/adt/status"
)

// Put - Adds value to the chain of its bucket.
//   - value is the element to store, it lands in bucket |hash(value)| mod Capacity
//
// It returns:
//   - err is nil, of type status.Full if Count equals Capacity, or of type status.AlreadyPresent if an equal value is
//     already stored. The table is left unchanged on failure.
func (H *HashTable[T]) Put(value T) (err error) {
	defer func() { H.putStatus = status.Of(err) }()

	if H.storage.GetStorageParameters().Records >= H.capacity {
		err = status.NewFull(fmt.Sprintf("hash table full at %d values", H.capacity))
		return
	}

	err = H.storage.Set(value)

	return
}

// Remove - Removes the value equal to value from its bucket.
//
// It returns:
//   - err is nil or of type status.NotFound
func (H *HashTable[T]) Remove(value T) (err error) {
	defer func() { H.removeStatus = status.Of(err) }()

	err = H.storage.Delete(value)

	return
}

// Contains - Returns true if a value equal to value is stored. No status is recorded.
func (H *HashTable[T]) Contains(value T) bool {
	_, err := H.storage.Get(value)
	return err == nil
}

// Clear - Removes all values, the capacity stays the same. Statuses are kept.
func (H *HashTable[T]) Clear() {
	H.storage.Clear()
}

// Values - Returns all stored values, bucket number ascending and insertion order within a bucket
func (H *HashTable[T]) Values() (values []T) {
	values = make([]T, 0, H.Count())

	iter := H.Iterator()
	for iter.HasNext() {
		value, err := iter.Next()
		if err != nil {
			break
		}
		values = append(values, value)
	}

	return
}

// Iterator - Returns an Iterator over all stored values in the same order as Values.
// The table must not be modified while the iterator is in use.
func (H *HashTable[T]) Iterator() *Iterator[T] {
	return newIterator(H.storage.Records())
}

// Stat - Walks through the entire set of buckets and produce a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of values per bucket,
//     false will set HashTableStat.BucketDistribution to nil.
func (H *HashTable[T]) Stat(includeDistribution bool) (hashTableStat *HashTableStat, err error) {
	var bucket model.Bucket[T]
	var hts HashTableStat

	if includeDistribution {
		hts.BucketDistribution = make([]int64, H.capacity)
	}

	// Iterate over every available bucket
	for i := int64(0); i < H.capacity; i++ {
		bucket, err = H.storage.GetBucket(i)
		if err != nil {
			return
		}

		n := int64(len(bucket.Records))
		hts.Records += n
		if n > hts.LongestChain {
			hts.LongestChain = n
		}
		if includeDistribution {
			hts.BucketDistribution[i] = n
		}
	}

	hts.LoadFactor = float64(hts.Records) / float64(H.capacity)

	hashTableStat = &hts
	return
}
