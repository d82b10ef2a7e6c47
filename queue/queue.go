// Package queue implements an unbounded FIFO queue and a double ended queue built on it.
// Elements are kept in a dynamic array with the front at index 0 (zero).
package queue

import (
	"github.com/gostonefire/adt/dynarray"
	"github.com/gostonefire/adt/status"
)

// ParentQueue - The queue contract shared by Queue and Deque
type ParentQueue[T any] interface {
	// AddTail - Adds value at the tail. Always succeeds.
	AddTail(value T)
	// RemoveFront - Removes and returns the front element. Fails when the queue is empty.
	RemoveFront() (value T, err error)
	// GetFront - Returns the front element. Fails when the queue is empty.
	GetFront() (value T, err error)
	// Clear - Removes all elements and resets all statuses.
	Clear()
	Size() int
	IsEmpty() bool
	RemoveFrontStatus() status.Status
	GetFrontStatus() status.Status
}

var _ ParentQueue[int] = (*Queue[int])(nil)

// Queue - The main implementation struct
type Queue[T any] struct {
	elements          *dynarray.DynArray[T]
	removeFrontStatus status.Status
	getFrontStatus    status.Status
}

// New - Returns a new empty queue
func New[T any]() *Queue[T] {
	return &Queue[T]{elements: dynarray.New[T]()}
}

// AddTail - Adds value at the tail of the queue
func (Q *Queue[T]) AddTail(value T) {
	Q.elements.Append(value)
}

// RemoveFront - Removes the front element
//
// It returns:
//   - value is the removed element, or the zero value on failure
//   - err is nil or of type status.Empty
func (Q *Queue[T]) RemoveFront() (value T, err error) {
	defer func() { Q.removeFrontStatus = status.Of(err) }()

	if Q.elements.Count() == 0 {
		err = status.NewEmpty("queue empty")
		return
	}

	value, err = Q.elements.RemoveAt(0)

	return
}

// GetFront - Returns the front element, the queue is not changed
//
// It returns:
//   - value is the front element, or the zero value on failure
//   - err is nil or of type status.Empty
func (Q *Queue[T]) GetFront() (value T, err error) {
	defer func() { Q.getFrontStatus = status.Of(err) }()

	if Q.elements.Count() == 0 {
		err = status.NewEmpty("queue empty")
		return
	}

	value, err = Q.elements.Get(0)

	return
}

// Clear - Removes all elements and resets every status to status.Nil
func (Q *Queue[T]) Clear() {
	Q.elements.Clear()
	Q.removeFrontStatus = status.Status{}
	Q.getFrontStatus = status.Status{}
}

// Size - Returns the number of elements
func (Q *Queue[T]) Size() int {
	return Q.elements.Count()
}

// IsEmpty - Returns true if the queue holds no elements
func (Q *Queue[T]) IsEmpty() bool {
	return Q.elements.Count() == 0
}

// Values - Returns a copy of the elements, front first
func (Q *Queue[T]) Values() []T {
	return Q.elements.Values()
}

// RemoveFrontStatus - Returns the status of the last call to RemoveFront
func (Q *Queue[T]) RemoveFrontStatus() status.Status { return Q.removeFrontStatus }

// GetFrontStatus - Returns the status of the last call to GetFront
func (Q *Queue[T]) GetFrontStatus() status.Status { return Q.getFrontStatus }
