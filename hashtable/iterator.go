package hashtable

import (
	"github.com/gostonefire/adt/internal/chain"
)

// Iterator - Is used to iterate over stored values one by one.
type Iterator[T any] struct {
	records *chain.Records[T]
}

// newIterator - Returns a pointer to a new Iterator struct
func newIterator[T any](records *chain.Records[T]) *Iterator[T] {
	return &Iterator[T]{
		records: records,
	}
}

// HasNext - Returns true if there are more values to be fetched from a call to Next.
func (I *Iterator[T]) HasNext() bool {
	return I.records.HasNext()
}

// Next - Returns value.
// It returns:
//   - value is the next stored value.
//   - err is of type status.NotFound if there are no more values when calling this function.
func (I *Iterator[T]) Next() (value T, err error) {
	return I.records.Next()
}
