package queue

import (
	"github.com/gostonefire/adt/status"
)

// DoubleEnded - The deque contract, a queue that can also be added to at the front and removed from at the tail
type DoubleEnded[T any] interface {
	ParentQueue[T]
	// AddFront - Adds value at the front. Always succeeds.
	AddFront(value T)
	// RemoveTail - Removes and returns the tail element. Fails when the deque is empty.
	RemoveTail() (value T, err error)
	// GetTail - Returns the tail element. Fails when the deque is empty.
	GetTail() (value T, err error)
	RemoveTailStatus() status.Status
	GetTailStatus() status.Status
}

var _ DoubleEnded[int] = (*Deque[int])(nil)

// Deque - The main implementation struct
type Deque[T any] struct {
	Queue[T]
	removeTailStatus status.Status
	getTailStatus    status.Status
}

// NewDeque - Returns a new empty deque
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{Queue: *New[T]()}
}

// AddFront - Adds value at the front of the deque
func (D *Deque[T]) AddFront(value T) {
	// Inserting at index 0 (zero) is always within range
	_ = D.elements.Insert(value, 0)
}

// RemoveTail - Removes the tail element
//
// It returns:
//   - value is the removed element, or the zero value on failure
//   - err is nil or of type status.Empty
func (D *Deque[T]) RemoveTail() (value T, err error) {
	defer func() { D.removeTailStatus = status.Of(err) }()

	if D.elements.Count() == 0 {
		err = status.NewEmpty("deque empty")
		return
	}

	value, err = D.elements.RemoveAt(D.elements.Count() - 1)

	return
}

// GetTail - Returns the tail element, the deque is not changed
//
// It returns:
//   - value is the tail element, or the zero value on failure
//   - err is nil or of type status.Empty
func (D *Deque[T]) GetTail() (value T, err error) {
	defer func() { D.getTailStatus = status.Of(err) }()

	if D.elements.Count() == 0 {
		err = status.NewEmpty("deque empty")
		return
	}

	value, err = D.elements.Get(D.elements.Count() - 1)

	return
}

// Clear - Removes all elements and resets every status, front and tail, to status.Nil
func (D *Deque[T]) Clear() {
	D.Queue.Clear()
	D.removeTailStatus = status.Status{}
	D.getTailStatus = status.Status{}
}

// RemoveTailStatus - Returns the status of the last call to RemoveTail
func (D *Deque[T]) RemoveTailStatus() status.Status { return D.removeTailStatus }

// GetTailStatus - Returns the status of the last call to GetTail
func (D *Deque[T]) GetTailStatus() status.Status { return D.getTailStatus }
