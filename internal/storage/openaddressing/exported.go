package openaddressing

import (
	"fmt"

	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/conf"
	"github.com/gostonefire/adt/internal/hash"
	"github.com/gostonefire/adt/internal/model"
	"github.com/gostonefire/adt/status"
)

// OAConf - Is a struct to be passed in the call to NewOAStorage and contains configuration for the storage.
//   - NumberOfSlots is the fixed number of slots, it can't be changed after creation
//   - Hasher is the hash function to distribute keys over slots with
type OAConf[K any] struct {
	NumberOfSlots int64
	Hasher        hashfunc.Hasher[K]
}

// OAStorage - Represents an in memory open addressing table with exactly one probe per key.
// Keys and values are held in parallel arrays, a slot is used when its in use flag is set, and a used slot always
// holds a key that hashes to that very slot. When a key hashes to a slot held by a different key there is no
// probing for another slot, the collision is reported and the key can't be stored until the slot is released.
type OAStorage[K comparable, V any] struct {
	keys          []K
	values        []V
	inUse         []bool
	numberOfSlots int64
	records       int64
	hashAlgorithm *hash.TableHashAlgorithm[K]
}

// NewOAStorage - Returns a pointer to a new instance of Open Addressing storage with all slots empty.
//   - oaConf is a OAConf struct providing configuration
//
// It returns:
//   - oaStorage which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOAStorage[K comparable, V any](oaConf OAConf[K]) (oaStorage *OAStorage[K, V], err error) {
	if oaConf.NumberOfSlots <= 0 {
		err = fmt.Errorf("number of slots must be a positive value higher than 0 (zero)")
		return
	}
	if oaConf.Hasher == nil {
		err = fmt.Errorf("a hasher must be given")
		return
	}

	oaStorage = &OAStorage[K, V]{
		keys:          make([]K, oaConf.NumberOfSlots),
		values:        make([]V, oaConf.NumberOfSlots),
		inUse:         make([]bool, oaConf.NumberOfSlots),
		numberOfSlots: oaConf.NumberOfSlots,
		hashAlgorithm: hash.NewTableHashAlgorithm(oaConf.NumberOfSlots, oaConf.Hasher),
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OAStorage
func (O *OAStorage[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: conf.SingleSlot,
		NumberOfBuckets:              O.numberOfSlots,
		Records:                      O.records,
	}

	return
}

// GetSlotNo - Returns the one slot number the given key may be stored in
func (O *OAStorage[K, V]) GetSlotNo(key K) int64 {
	return O.hashAlgorithm.HashFunc1(key)
}

// GetSlot - Returns the contents of a slot
//   - slotNo is the identifier of a slot, the number can be retrieved by call to GetSlotNo
//
// It returns:
//   - slot is a model.Slot struct, InUse tells whether Key and Value are valid
//   - err is of type status.OutOfRange if the slot number is not within the table
func (O *OAStorage[K, V]) GetSlot(slotNo int64) (slot model.Slot[K, V], err error) {
	if slotNo < 0 || slotNo >= O.numberOfSlots {
		err = status.NewOutOfRange(fmt.Sprintf("slot number %d outside 0..%d", slotNo, O.numberOfSlots-1))
		return
	}

	slot = model.Slot[K, V]{
		SlotNo: slotNo,
		InUse:  O.inUse[slotNo],
		Key:    O.keys[slotNo],
		Value:  O.values[slotNo],
	}

	return
}

// Get - Gets the slot holding key.
//
// It returns:
//   - slot is the matching slot if found
//   - err is nil, of type status.Collision if the slot is held by another key, or of type status.NotFound if the
//     slot is empty
func (O *OAStorage[K, V]) Get(key K) (slot model.Slot[K, V], err error) {
	slotNo := O.GetSlotNo(key)

	if err = O.check(key, slotNo); err != nil {
		return
	}
	if !O.inUse[slotNo] {
		err = status.NewNotFound(fmt.Sprintf("slot %d is empty", slotNo))
		return
	}

	slot, err = O.GetSlot(slotNo)

	return
}

// Set - Stores value under key. If the slot already holds key its value is overwritten.
//
// It returns:
//   - err is nil or of type status.Collision, in the latter case nothing is changed
func (O *OAStorage[K, V]) Set(key K, value V) (err error) {
	slotNo := O.GetSlotNo(key)

	if err = O.check(key, slotNo); err != nil {
		return
	}

	if !O.inUse[slotNo] {
		O.inUse[slotNo] = true
		O.keys[slotNo] = key
		O.records++
	}
	O.values[slotNo] = value

	return
}

// Delete - Releases the slot holding key
//
// It returns:
//   - err is nil, of type status.Collision if the slot is held by another key, or of type status.NotFound if the
//     slot is empty. The slot is left untouched on failure.
func (O *OAStorage[K, V]) Delete(key K) (err error) {
	slotNo := O.GetSlotNo(key)

	if err = O.check(key, slotNo); err != nil {
		return
	}
	if !O.inUse[slotNo] {
		err = status.NewNotFound(fmt.Sprintf("slot %d is empty", slotNo))
		return
	}

	var zeroKey K
	var zeroValue V
	O.inUse[slotNo] = false
	O.keys[slotNo] = zeroKey
	O.values[slotNo] = zeroValue
	O.records--

	return
}

// IsKey - Returns true if key is stored
func (O *OAStorage[K, V]) IsKey(key K) bool {
	slotNo := O.GetSlotNo(key)
	return O.inUse[slotNo] && O.keys[slotNo] == key
}

// Keys - Returns all stored keys in slot order
func (O *OAStorage[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, O.records)
	for i, used := range O.inUse {
		if used {
			keys = append(keys, O.keys[i])
		}
	}

	return
}

// Clear - Releases all slots
func (O *OAStorage[K, V]) Clear() {
	clear(O.keys)
	clear(O.values)
	clear(O.inUse)
	O.records = 0
}

// check - Returns a status.Collision error if slotNo is held by a key other than key
func (O *OAStorage[K, V]) check(key K, slotNo int64) (err error) {
	if O.inUse[slotNo] && O.keys[slotNo] != key {
		err = status.NewCollision(fmt.Sprintf("slot %d is held by another key", slotNo))
	}

	return
}
