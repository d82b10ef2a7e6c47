// Package stack implements a LIFO stack with a fixed upper bound on the number of elements.
package stack

import (
	"fmt"

	"github.com/gostonefire/adt/dynarray"
	"github.com/gostonefire/adt/internal/conf"
	"github.com/gostonefire/adt/status"
)

// Stack - The bounded stack contract
type Stack[T any] interface {
	// Push - Adds value on top. Fails when the stack holds MaxSize elements.
	Push(value T) error
	// Pop - Removes and returns the top element. Fails when the stack is empty.
	Pop() (value T, err error)
	// Peek - Returns the top element without removing it. Fails when the stack is empty.
	Peek() (value T, err error)
	// Clear - Removes all elements and resets all statuses.
	Clear()
	Size() int
	MaxSize() int
	PushStatus() status.Status
	PopStatus() status.Status
	PeekStatus() status.Status
}

var _ Stack[int] = (*BoundedStack[int])(nil)

// BoundedStack - The main implementation struct, the top of the stack is the last element of the array
type BoundedStack[T any] struct {
	elements   *dynarray.DynArray[T]
	maxSize    int
	pushStatus status.Status
	popStatus  status.Status
	peekStatus status.Status
}

// New - Returns a new empty stack that holds at most maxSize elements
//   - maxSize has to be higher than 0 (zero)
func New[T any](maxSize int) (boundedStack *BoundedStack[T], err error) {
	if maxSize <= 0 {
		err = fmt.Errorf("max size must be a positive value higher than 0 (zero)")
		return
	}

	boundedStack = &BoundedStack[T]{
		elements: dynarray.New[T](),
		maxSize:  maxSize,
	}

	return
}

// NewDefault - Returns a new empty stack that holds at most 32 elements
func NewDefault[T any]() *BoundedStack[T] {
	return &BoundedStack[T]{
		elements: dynarray.New[T](),
		maxSize:  conf.DefaultStackSize,
	}
}

// Push - Adds value on top of the stack
//
// It returns:
//   - err is nil or of type status.Full, in the latter case the stack is left unchanged
func (B *BoundedStack[T]) Push(value T) (err error) {
	defer func() { B.pushStatus = status.Of(err) }()

	if B.elements.Count() >= B.maxSize {
		err = status.NewFull(fmt.Sprintf("stack full at %d elements", B.maxSize))
		return
	}

	B.elements.Append(value)

	return
}

// Pop - Removes the top element
//
// It returns:
//   - value is the removed element, or the zero value on failure
//   - err is nil or of type status.Empty
func (B *BoundedStack[T]) Pop() (value T, err error) {
	defer func() { B.popStatus = status.Of(err) }()

	if B.elements.Count() == 0 {
		err = status.NewEmpty("stack empty")
		return
	}

	value, err = B.elements.RemoveAt(B.elements.Count() - 1)

	return
}

// Peek - Returns the top element, the stack is not changed
//
// It returns:
//   - value is the top element, or the zero value on failure
//   - err is nil or of type status.Empty
func (B *BoundedStack[T]) Peek() (value T, err error) {
	defer func() { B.peekStatus = status.Of(err) }()

	if B.elements.Count() == 0 {
		err = status.NewEmpty("stack empty")
		return
	}

	value, err = B.elements.Get(B.elements.Count() - 1)

	return
}

// Clear - Removes all elements and resets every status to status.Nil
func (B *BoundedStack[T]) Clear() {
	B.elements.Clear()
	B.pushStatus = status.Status{}
	B.popStatus = status.Status{}
	B.peekStatus = status.Status{}
}

// Size - Returns the number of elements
func (B *BoundedStack[T]) Size() int {
	return B.elements.Count()
}

// MaxSize - Returns the max number of elements
func (B *BoundedStack[T]) MaxSize() int {
	return B.maxSize
}

// PushStatus - Returns the status of the last call to Push
func (B *BoundedStack[T]) PushStatus() status.Status { return B.pushStatus }

// PopStatus - Returns the status of the last call to Pop
func (B *BoundedStack[T]) PopStatus() status.Status { return B.popStatus }

// PeekStatus - Returns the status of the last call to Peek
func (B *BoundedStack[T]) PeekStatus() status.Status { return B.peekStatus }
