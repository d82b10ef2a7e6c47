// Package bloom implements a membership filter, a fixed length bit array where every added item sets three bits.
// An item that was added is always reported as present, an item that was not added may be reported as present
// too (a false positive). Items can't be removed, only the whole filter can be cleared.
package bloom

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/conf"
	"github.com/gostonefire/adt/internal/hash"
)

// MembershipFilter - The membership filter contract
type MembershipFilter interface {
	// Add - Records item as a member.
	Add(item string)
	// IsValue - Returns true if item may have been added, false if it certainly was not.
	IsValue(item string) bool
	// Clear - Forgets every item.
	Clear()
	Length() int
}

var _ MembershipFilter = (*Filter)(nil)

// Filter - The main implementation struct
type Filter struct {
	bits   *bitset.BitSet
	length int64
	native hashfunc.Hasher[string]
}

// New - Returns a new empty filter.
//   - length is the number of bits, it has to be higher than 0 (zero)
func New(length int) (filter *Filter, err error) {
	if length <= 0 {
		err = fmt.Errorf("length must be a positive value higher than 0 (zero)")
		return
	}

	filter = &Filter{
		bits:   bitset.New(uint(length)),
		length: int64(length),
		native: hashfunc.String(),
	}

	return
}

// Add - Sets the bits of all hash functions for item. Adding the same item again changes nothing.
func (F *Filter) Add(item string) {
	for _, i := range F.indices(item) {
		F.bits.Set(i)
	}
}

// IsValue - Returns true if the bits of all hash functions for item are set
func (F *Filter) IsValue(item string) bool {
	for _, i := range F.indices(item) {
		if !F.bits.Test(i) {
			return false
		}
	}

	return true
}

// Clear - Resets every bit
func (F *Filter) Clear() {
	F.bits.ClearAll()
}

// Length - Returns the number of bits
func (F *Filter) Length() int {
	return int(F.length)
}

// indices - Returns the bit positions of item, one per hash function: the native xxhash of item followed by two
// salted polynomial rolling hashes
func (F *Filter) indices(item string) (indices [conf.BloomHashFunctions]uint) {
	indices[0] = uint(hash.Reduce(F.native.Hash(item), F.length))
	indices[1] = uint(hash.PolynomialHash(item, conf.BloomSalt1, F.length))
	indices[2] = uint(hash.PolynomialHash(item, conf.BloomSalt2, F.length))

	return
}
