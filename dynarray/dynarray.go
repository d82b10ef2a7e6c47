// Package dynarray implements a dynamic array, contiguous indexable storage that grows by doubling when full and
// shrinks by a factor 1.5 once less than half of it is in use. Capacity never goes below 16.
package dynarray

import (
	"fmt"

	"github.com/gostonefire/adt/internal/conf"
	"github.com/gostonefire/adt/internal/utils"
	"github.com/gostonefire/adt/status"
)

// Array - The dynamic array contract
type Array[T any] interface {
	// Append - Adds value at the end, growing the buffer if it is full. Always succeeds.
	Append(value T)
	// Insert - Inserts value at index, shifting later elements right. Index may equal Count.
	Insert(value T, index int) error
	// RemoveAt - Removes the element at index, shifting later elements left, and possibly shrinks the buffer.
	RemoveAt(index int) (value T, err error)
	// Put - Replaces the element at index.
	Put(value T, index int) error
	// Get - Returns the element at index.
	Get(index int) (value T, err error)
	// Clear - Removes all elements and resets the buffer to its initial capacity.
	Clear()
	Count() int
	Capacity() int
	AppendStatus() status.Status
	InsertStatus() status.Status
	RemoveStatus() status.Status
	PutStatus() status.Status
	GetStatus() status.Status
}

var _ Array[int] = (*DynArray[int])(nil)

// DynArray - The main implementation struct
type DynArray[T any] struct {
	buffer       []T
	count        int
	appendStatus status.Status
	insertStatus status.Status
	removeStatus status.Status
	putStatus    status.Status
	getStatus    status.Status
}

// New - Returns a pointer to a new empty DynArray with a buffer of 16 elements
func New[T any]() *DynArray[T] {
	d := &DynArray[T]{}
	d.makeArray(conf.MinCapacity)
	return d
}

// Append - Adds value at the end of the array. If the buffer is full it is first reallocated to twice its size.
func (D *DynArray[T]) Append(value T) {
	if D.count == len(D.buffer) {
		D.makeArray(utils.GrowCapacity(len(D.buffer)))
	}

	D.buffer[D.count] = value
	D.count++
	D.appendStatus = status.Of(nil)
}

// Insert - Inserts value at index and shifts elements at index and onwards one step to the right.
//   - value is the element to insert
//   - index is the position to insert at, it has to be within 0 and Count (inclusive)
//
// It returns:
//   - err is nil or of type status.OutOfRange, in the latter case the array is left unchanged
func (D *DynArray[T]) Insert(value T, index int) (err error) {
	defer func() { D.insertStatus = status.Of(err) }()

	if index < 0 || index > D.count {
		err = status.NewOutOfRange(fmt.Sprintf("insert index %d outside 0..%d", index, D.count))
		return
	}

	if D.count == len(D.buffer) {
		D.makeArray(utils.GrowCapacity(len(D.buffer)))
	}

	copy(D.buffer[index+1:D.count+1], D.buffer[index:D.count])
	D.buffer[index] = value
	D.count++

	return
}

// RemoveAt - Removes the element at index and closes the gap by shifting later elements to the left.
// If fewer than half of the buffer slots are in use afterwards, the buffer shrinks to capacity / 1.5 (rounded
// down, but never below 16).
//   - index is the position to remove, it has to be within 0 and Count - 1 (inclusive)
//
// It returns:
//   - value is the removed element, or the zero value on failure
//   - err is nil or of type status.OutOfRange, in the latter case the array is left unchanged
func (D *DynArray[T]) RemoveAt(index int) (value T, err error) {
	defer func() { D.removeStatus = status.Of(err) }()

	if index < 0 || index >= D.count {
		err = status.NewOutOfRange(fmt.Sprintf("remove index %d outside 0..%d", index, D.count-1))
		return
	}

	value = D.buffer[index]
	copy(D.buffer[index:D.count-1], D.buffer[index+1:D.count])
	D.count--
	var zero T
	D.buffer[D.count] = zero

	if utils.ShouldShrink(D.count, len(D.buffer)) {
		D.makeArray(utils.ShrinkCapacity(len(D.buffer)))
	}

	return
}

// Put - Replaces the element at index with value. The buffer is never resized.
//   - index is the position to replace, it has to be within 0 and Count - 1 (inclusive)
//
// It returns:
//   - err is nil or of type status.OutOfRange
func (D *DynArray[T]) Put(value T, index int) (err error) {
	defer func() { D.putStatus = status.Of(err) }()

	if index < 0 || index >= D.count {
		err = status.NewOutOfRange(fmt.Sprintf("put index %d outside 0..%d", index, D.count-1))
		return
	}

	D.buffer[index] = value

	return
}

// Get - Returns the element at index
//   - index is the position to read, it has to be within 0 and Count - 1 (inclusive)
//
// It returns:
//   - value is the element, or the zero value on failure
//   - err is nil or of type status.OutOfRange
func (D *DynArray[T]) Get(index int) (value T, err error) {
	defer func() { D.getStatus = status.Of(err) }()

	if index < 0 || index >= D.count {
		err = status.NewOutOfRange(fmt.Sprintf("get index %d outside 0..%d", index, D.count-1))
		return
	}

	value = D.buffer[index]

	return
}

// Clear - Removes all elements and goes back to a buffer of 16 elements. Statuses are kept.
func (D *DynArray[T]) Clear() {
	D.buffer = nil
	D.count = 0
	D.makeArray(conf.MinCapacity)
}

// Count - Returns the number of elements in use
func (D *DynArray[T]) Count() int {
	return D.count
}

// Capacity - Returns the number of allocated slots
func (D *DynArray[T]) Capacity() int {
	return len(D.buffer)
}

// Values - Returns a copy of the elements in use, in index order
func (D *DynArray[T]) Values() []T {
	values := make([]T, D.count)
	copy(values, D.buffer[:D.count])
	return values
}

// AppendStatus - Returns the status of the last call to Append
func (D *DynArray[T]) AppendStatus() status.Status { return D.appendStatus }

// InsertStatus - Returns the status of the last call to Insert
func (D *DynArray[T]) InsertStatus() status.Status { return D.insertStatus }

// RemoveStatus - Returns the status of the last call to RemoveAt
func (D *DynArray[T]) RemoveStatus() status.Status { return D.removeStatus }

// PutStatus - Returns the status of the last call to Put
func (D *DynArray[T]) PutStatus() status.Status { return D.putStatus }

// GetStatus - Returns the status of the last call to Get
func (D *DynArray[T]) GetStatus() status.Status { return D.getStatus }

// makeArray - Reallocates the buffer to newCapacity (at least 16) and copies the elements in use
func (D *DynArray[T]) makeArray(newCapacity int) {
	newCapacity = utils.Floor(newCapacity)
	if newCapacity == len(D.buffer) {
		return
	}

	buffer := make([]T, newCapacity)
	copy(buffer, D.buffer[:D.count])
	D.buffer = buffer
}
