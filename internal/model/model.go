package model

// Bucket - Represents all records in one bucket of a separate chaining table, in insertion order
type Bucket[T any] struct {
	BucketNo int64
	Records  []T
}

// Slot - Represents one slot of an open addressing table. Key and Value are only meaningful when InUse is true.
type Slot[K any, V any] struct {
	SlotNo int64
	InUse  bool
	Key    K
	Value  V
}

// StorageParameters - Represents parameters specific for any implementation of storage
//   - CollisionResolutionTechnique is one of conf.SeparateChaining or conf.SingleSlot
//   - NumberOfBuckets is the fixed number of buckets (or slots) of the table
//   - Records is the number of records currently stored
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	Records                      int64
}
