// Package dictionary implements a fixed capacity associative array using open addressing with a single probe.
// Every key has exactly one slot it can live in. When that slot is held by a different key the operation fails
// with a collision, no other slot is tried. This keeps lookups to one probe at the price of a load factor limit,
// tables should be sized well above the expected number of keys.
package dictionary

import (
	"fmt"

	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/model"
	"github.com/gostonefire/adt/internal/storage/openaddressing"
	"github.com/gostonefire/adt/status"
)

// Map - The associative array contract
type Map[K comparable, V any] interface {
	// Put - Stores value under key, overwriting any value already stored under key.
	Put(key K, value V) error
	// Remove - Removes key and its value.
	Remove(key K) error
	// Get - Returns the value stored under key.
	Get(key K) (value V, err error)
	// IsKey - Returns true if key is stored.
	IsKey(key K) bool
	// Clear - Removes all keys and resets all statuses.
	Clear()
	Count() int
	Capacity() int
	Keys() []K
	PutStatus() status.Status
	RemoveStatus() status.Status
	GetStatus() status.Status
}

var _ Map[string, int] = (*Dictionary[string, int])(nil)

// slotStorage - Interface for any single slot storage implementation
type slotStorage[K comparable, V any] interface {
	Get(key K) (slot model.Slot[K, V], err error)
	Set(key K, value V) (err error)
	Delete(key K) (err error)
	IsKey(key K) bool
	Keys() []K
	Clear()
	GetStorageParameters() (params model.StorageParameters)
}

// Dictionary - The main implementation struct
type Dictionary[K comparable, V any] struct {
	storage      slotStorage[K, V]
	capacity     int64
	putStatus    status.Status
	removeStatus status.Status
	getStatus    status.Status
}

// New - Returns a new empty dictionary with capacity slots.
//   - capacity is the number of slots, it has to be higher than 0 (zero)
//   - hasher is an optional entry to provide a custom hash function for keys, nil gives hashfunc.Comparable
//
// It returns:
//   - dictionary is a pointer to a Dictionary struct
//   - err is a normal go Error which should be nil if everything went ok
func New[K comparable, V any](capacity int, hasher hashfunc.Hasher[K]) (dictionary *Dictionary[K, V], err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	if hasher == nil {
		hasher = hashfunc.Comparable[K]()
	}

	var s *openaddressing.OAStorage[K, V]
	s, err = openaddressing.NewOAStorage[K, V](openaddressing.OAConf[K]{
		NumberOfSlots: int64(capacity),
		Hasher:        hasher,
	})
	if err != nil {
		return
	}

	dictionary = &Dictionary[K, V]{
		storage:  s,
		capacity: int64(capacity),
	}

	return
}

// Put - Stores value under key. If key is already stored its value is replaced and Count is unchanged.
//
// It returns:
//   - err is nil or of type status.Collision if the slot of key is held by another key
func (D *Dictionary[K, V]) Put(key K, value V) (err error) {
	defer func() { D.putStatus = status.Of(err) }()

	err = D.storage.Set(key, value)

	return
}

// Remove - Removes key and its value, releasing the slot.
//
// It returns:
//   - err is nil, of type status.Collision if the slot of key is held by another key, or of type status.NotFound
func (D *Dictionary[K, V]) Remove(key K) (err error) {
	defer func() { D.removeStatus = status.Of(err) }()

	err = D.storage.Delete(key)

	return
}

// Get - Returns the value stored under key.
//
// It returns:
//   - value is the stored value, or the zero value on failure
//   - err is nil, of type status.Collision if the slot of key is held by another key, or of type status.NotFound
func (D *Dictionary[K, V]) Get(key K) (value V, err error) {
	defer func() { D.getStatus = status.Of(err) }()

	slot, err := D.storage.Get(key)
	if err != nil {
		return
	}

	value = slot.Value

	return
}

// IsKey - Returns true if key is stored. No status is recorded.
func (D *Dictionary[K, V]) IsKey(key K) bool {
	return D.storage.IsKey(key)
}

// Clear - Removes all keys and values and resets every status to status.Nil
func (D *Dictionary[K, V]) Clear() {
	D.storage.Clear()
	D.putStatus = status.Status{}
	D.removeStatus = status.Status{}
	D.getStatus = status.Status{}
}

// Count - Returns the number of stored keys
func (D *Dictionary[K, V]) Count() int {
	return int(D.storage.GetStorageParameters().Records)
}

// Capacity - Returns the number of slots
func (D *Dictionary[K, V]) Capacity() int {
	return int(D.capacity)
}

// Keys - Returns all stored keys in slot order
func (D *Dictionary[K, V]) Keys() []K {
	return D.storage.Keys()
}

// PutStatus - Returns the status of the last call to Put
func (D *Dictionary[K, V]) PutStatus() status.Status { return D.putStatus }

// RemoveStatus - Returns the status of the last call to Remove
func (D *Dictionary[K, V]) RemoveStatus() status.Status { return D.removeStatus }

// GetStatus - Returns the status of the last call to Get
func (D *Dictionary[K, V]) GetStatus() status.Status { return D.getStatus }
