// Package hashtable implements a fixed capacity hash table and a set on top of it, both resolving collisions by
// separate chaining. The number of buckets equals the capacity and never changes, there is no rehashing.
package hashtable

import (
	"fmt"

	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/chain"
	"github.com/gostonefire/adt/internal/model"
	"github.com/gostonefire/adt/internal/storage/separatechaining"
	"github.com/gostonefire/adt/status"
)

// Table - The chained hash table contract
type Table[T comparable] interface {
	// Put - Stores value. Fails when the table is full or when an equal value is already stored.
	Put(value T) error
	// Remove - Removes the value equal to value. Fails when there is none.
	Remove(value T) error
	// Contains - Returns true if an equal value is stored.
	Contains(value T) bool
	// Clear - Removes all values.
	Clear()
	Capacity() int
	Count() int
	IsEmpty() bool
	Values() []T
	Iterator() *Iterator[T]
	Stat(includeDistribution bool) (*HashTableStat, error)
	PutStatus() status.Status
	RemoveStatus() status.Status
}

var _ Table[int] = (*HashTable[int])(nil)

// chainStorage - Interface for any chained storage implementation
type chainStorage[T comparable] interface {
	Get(value T) (record T, err error)
	Set(value T) (err error)
	Delete(value T) (err error)
	Clear()
	GetBucket(bucketNo int64) (bucket model.Bucket[T], err error)
	GetStorageParameters() (params model.StorageParameters)
	Records() *chain.Records[T]
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of values stored
//   - LoadFactor is Records divided by the number of buckets
//   - LongestChain is the number of values in the most populated bucket
//   - BucketDistribution is the number of values stored in each available bucket
type HashTableStat struct {
	Records            int64
	LoadFactor         float64
	LongestChain       int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct
type HashTable[T comparable] struct {
	storage      chainStorage[T]
	hasher       hashfunc.Hasher[T]
	capacity     int64
	putStatus    status.Status
	removeStatus status.Status
}

// New - Returns a new hash table with capacity buckets, able to hold at most capacity values.
//   - capacity is the number of buckets as well as the max number of values, it has to be higher than 0 (zero)
//   - hasher is an optional entry to provide a custom hash function, nil gives hashfunc.Comparable
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is a normal go Error which should be nil if everything went ok
func New[T comparable](capacity int, hasher hashfunc.Hasher[T]) (hashTable *HashTable[T], err error) {
	t, err := newTable(capacity, hasher)
	if err != nil {
		return
	}

	hashTable = &t

	return
}

// newTable - Returns a HashTable by value so it can be embedded
func newTable[T comparable](capacity int, hasher hashfunc.Hasher[T]) (hashTable HashTable[T], err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	if hasher == nil {
		hasher = hashfunc.Comparable[T]()
	}

	scConf := separatechaining.SCConf[T]{
		NumberOfBuckets: int64(capacity),
		Hasher:          hasher,
	}

	var s *separatechaining.SCStorage[T]
	s, err = separatechaining.NewSCStorage(scConf)
	if err != nil {
		return
	}

	hashTable = HashTable[T]{
		storage:  s,
		hasher:   hasher,
		capacity: int64(capacity),
	}

	return
}

// Capacity - Returns the number of buckets, which is also the max number of values
func (H *HashTable[T]) Capacity() int {
	return int(H.capacity)
}

// Count - Returns the number of stored values
func (H *HashTable[T]) Count() int {
	return int(H.storage.GetStorageParameters().Records)
}

// IsEmpty - Returns true if no values are stored
func (H *HashTable[T]) IsEmpty() bool {
	return H.Count() == 0
}

// PutStatus - Returns the status of the last call to Put
func (H *HashTable[T]) PutStatus() status.Status { return H.putStatus }

// RemoveStatus - Returns the status of the last call to Remove
func (H *HashTable[T]) RemoveStatus() status.Status { return H.removeStatus }
