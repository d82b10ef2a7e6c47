package hash

import "github.com/gostonefire/adt/hashfunc"

// TableHashAlgorithm - The internally used bucket (or slot) selection algorithm. It takes the hash value from the
// supplied hashfunc.Hasher and applies bucket = |hash| mod tableSize to get the bucket number.
// Unlike a file backed table the size is used as is, it is not rounded up to a power of two.
type TableHashAlgorithm[T any] struct {
	tableSize int64
	hasher    hashfunc.Hasher[T]
}

// NewTableHashAlgorithm - Returns a pointer to a new TableHashAlgorithm instance
//   - tableSize is the number of buckets or slots to distribute over, must be higher than 0 (zero)
//   - hasher is the hash function to apply to values
func NewTableHashAlgorithm[T any](tableSize int64, hasher hashfunc.Hasher[T]) *TableHashAlgorithm[T] {
	return &TableHashAlgorithm[T]{tableSize: tableSize, hasher: hasher}
}

// HashFunc1 - Given value it generates an index (bucket) between 0 and table size - 1
func (H *TableHashAlgorithm[V]) HashFunc1(value V) int64 {
	return Reduce(H.hasher.Hash(value), H.tableSize)
}

// GetTableSize - Returns the table size the hash function is distributing over
func (H *TableHashAlgorithm[V]) GetTableSize() int64 {
	return H.tableSize
}

// Reduce - Returns |h| mod n for n > 0.
// The reduction is done before taking the absolute value so that math.MinInt64 can't overflow.
func Reduce(h, n int64) int64 {
	r := h % n
	if r < 0 {
		r = -r
	}
	return r
}
