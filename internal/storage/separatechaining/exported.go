package separatechaining

import (
	"fmt"

	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/chain"
	"github.com/gostonefire/adt/internal/conf"
	"github.com/gostonefire/adt/internal/hash"
	"github.com/gostonefire/adt/internal/model"
	"github.com/gostonefire/adt/internal/utils"
	"github.com/gostonefire/adt/status"
)

// SCConf - Is a struct to be passed in the call to NewSCStorage and contains configuration for the storage.
//   - NumberOfBuckets is the fixed number of buckets, it can't be changed after creation
//   - Hasher is the hash function to distribute values over buckets with
type SCConf[T any] struct {
	NumberOfBuckets int64
	Hasher          hashfunc.Hasher[T]
}

// SCStorage - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// Each bucket holds a chain of values in insertion order. The number of buckets never changes, there is no rehashing.
// Values are told apart with ==, a shared hash value only means a shared bucket.
type SCStorage[T comparable] struct {
	buckets         [][]T
	numberOfBuckets int64
	records         int64
	hashAlgorithm   *hash.TableHashAlgorithm[T]
}

// NewSCStorage - Returns a pointer to a new instance of Separate Chaining storage with all buckets empty.
//   - scConf is a SCConf struct providing configuration
//
// It returns:
//   - scStorage which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCStorage[T comparable](scConf SCConf[T]) (scStorage *SCStorage[T], err error) {
	if scConf.NumberOfBuckets <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}
	if scConf.Hasher == nil {
		err = fmt.Errorf("a hasher must be given")
		return
	}

	scStorage = &SCStorage[T]{
		buckets:         make([][]T, scConf.NumberOfBuckets),
		numberOfBuckets: scConf.NumberOfBuckets,
		hashAlgorithm:   hash.NewTableHashAlgorithm(scConf.NumberOfBuckets, scConf.Hasher),
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCStorage
func (S *SCStorage[T]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: conf.SeparateChaining,
		NumberOfBuckets:              S.numberOfBuckets,
		Records:                      S.records,
	}

	return
}

// GetBucketNo - Returns which bucket number that the given value results in
func (S *SCStorage[T]) GetBucketNo(value T) int64 {
	return S.hashAlgorithm.HashFunc1(value)
}

// GetBucket - Returns a bucket with a copy of its records given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct containing all records in the bucket
//   - err is of type status.OutOfRange if the bucket number is not within the table
func (S *SCStorage[T]) GetBucket(bucketNo int64) (bucket model.Bucket[T], err error) {
	bucket, err = S.getBucket(bucketNo)
	if err != nil {
		return
	}

	records := make([]T, len(bucket.Records))
	copy(records, bucket.Records)
	bucket.Records = records

	return
}

// Get - Gets the stored record equal to value.
//
// It returns:
//   - record is the matching record if found
//   - err is nil or of type status.NotFound
func (S *SCStorage[T]) Get(value T) (record T, err error) {
	bucketNo := S.GetBucketNo(value)

	i := utils.IndexOf(S.buckets[bucketNo], value)
	if i < 0 {
		err = status.NewNotFound(fmt.Sprintf("value not found in bucket %d", bucketNo))
		return
	}

	record = S.buckets[bucketNo][i]

	return
}

// Set - Appends value to the chain of its bucket unless an equal value is already there.
//
// It returns:
//   - err is nil or of type status.AlreadyPresent
func (S *SCStorage[T]) Set(value T) (err error) {
	bucketNo := S.GetBucketNo(value)

	if utils.IndexOf(S.buckets[bucketNo], value) >= 0 {
		err = status.NewAlreadyPresent(fmt.Sprintf("value already present in bucket %d", bucketNo))
		return
	}

	S.buckets[bucketNo] = append(S.buckets[bucketNo], value)
	S.records++

	return
}

// Delete - Removes the first record equal to value from its bucket
//
// It returns:
//   - err is nil or of type status.NotFound
func (S *SCStorage[T]) Delete(value T) (err error) {
	bucketNo := S.GetBucketNo(value)

	i := utils.IndexOf(S.buckets[bucketNo], value)
	if i < 0 {
		err = status.NewNotFound(fmt.Sprintf("value not found in bucket %d", bucketNo))
		return
	}

	S.buckets[bucketNo] = utils.RemoveIndex(S.buckets[bucketNo], i)
	S.records--

	return
}

// Clear - Empties all buckets
func (S *SCStorage[T]) Clear() {
	for i := range S.buckets {
		S.buckets[i] = nil
	}
	S.records = 0
}

// Records - Returns an iterator over all records, bucket number ascending and insertion order within a bucket
func (S *SCStorage[T]) Records() *chain.Records[T] {
	return chain.NewRecords(S.getBucket, S.numberOfBuckets)
}

// getBucket - Returns the bucket without copying its records
func (S *SCStorage[T]) getBucket(bucketNo int64) (bucket model.Bucket[T], err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = status.NewOutOfRange(fmt.Sprintf("bucket number %d outside 0..%d", bucketNo, S.numberOfBuckets-1))
		return
	}

	bucket = model.Bucket[T]{BucketNo: bucketNo, Records: S.buckets[bucketNo]}

	return
}
