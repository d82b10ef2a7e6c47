package hashtable

import (
	"fmt"

	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/status"
)

// Set - The set contract, a Table where adding a member twice is not a failure, plus set algebra
type Set[T comparable] interface {
	Table[T]
	// Union - Returns a new set holding the members of both sets.
	Union(other *PowerSet[T]) (*PowerSet[T], error)
	// Intersection - Returns a new set holding the members found in both sets.
	Intersection(other *PowerSet[T]) (*PowerSet[T], error)
	// Difference - Returns a new set holding the members not found in other.
	Difference(other *PowerSet[T]) (*PowerSet[T], error)
	// IsSubset - Returns true if every member of other is a member of this set.
	IsSubset(other *PowerSet[T]) bool
	// Equals - Returns true if both sets hold the same members.
	Equals(other *PowerSet[T]) bool
}

var _ Set[int] = (*PowerSet[int])(nil)

// PowerSet - A set with at most capacity members, stored in a chained hash table
type PowerSet[T comparable] struct {
	HashTable[T]
}

// NewPowerSet - Returns a new empty set able to hold at most capacity members.
//   - capacity is the number of buckets as well as the max number of members, it has to be higher than 0 (zero)
//   - hasher is an optional entry to provide a custom hash function, nil gives hashfunc.Comparable
func NewPowerSet[T comparable](capacity int, hasher hashfunc.Hasher[T]) (powerSet *PowerSet[T], err error) {
	t, err := newTable(capacity, hasher)
	if err != nil {
		return
	}

	powerSet = &PowerSet[T]{HashTable: t}

	return
}

// Put - Adds value as a member. Adding an existing member changes nothing and succeeds, also when the set is full.
//
// It returns:
//   - err is nil or of type status.Full
func (P *PowerSet[T]) Put(value T) (err error) {
	defer func() { P.putStatus = status.Of(err) }()

	if P.Contains(value) {
		return
	}

	if P.storage.GetStorageParameters().Records >= P.capacity {
		err = status.NewFull(fmt.Sprintf("set full at %d members", P.capacity))
		return
	}

	err = P.storage.Set(value)

	return
}

// Union - Returns a new set with capacity P.Capacity + other.Capacity holding the members of P followed by the members
// of other. Neither operand is modified.
func (P *PowerSet[T]) Union(other *PowerSet[T]) (union *PowerSet[T], err error) {
	union, err = NewPowerSet(P.Capacity()+other.Capacity(), P.hasher)
	if err != nil {
		return
	}

	for _, set := range []*PowerSet[T]{P, other} {
		for _, v := range set.Values() {
			if err = union.Put(v); err != nil {
				return
			}
		}
	}

	return
}

// Intersection - Returns a new set with capacity min(P.Capacity, other.Capacity) holding the members of P that are
// also members of other. Neither operand is modified.
func (P *PowerSet[T]) Intersection(other *PowerSet[T]) (intersection *PowerSet[T], err error) {
	intersection, err = NewPowerSet(min(P.Capacity(), other.Capacity()), P.hasher)
	if err != nil {
		return
	}

	for _, v := range P.Values() {
		if other.Contains(v) {
			if err = intersection.Put(v); err != nil {
				return
			}
		}
	}

	return
}

// Difference - Returns a new set with capacity P.Capacity holding the members of P that are not members of other.
// Neither operand is modified.
func (P *PowerSet[T]) Difference(other *PowerSet[T]) (difference *PowerSet[T], err error) {
	difference, err = NewPowerSet(P.Capacity(), P.hasher)
	if err != nil {
		return
	}

	for _, v := range P.Values() {
		if !other.Contains(v) {
			if err = difference.Put(v); err != nil {
				return
			}
		}
	}

	return
}

// IsSubset - Returns true if other is a subset of P, i.e. every member of other is a member of P
func (P *PowerSet[T]) IsSubset(other *PowerSet[T]) bool {
	iter := other.Iterator()
	for iter.HasNext() {
		v, err := iter.Next()
		if err != nil || !P.Contains(v) {
			return false
		}
	}

	return true
}

// Equals - Returns true if P and other have the same number of members and every member of P is a member of other
func (P *PowerSet[T]) Equals(other *PowerSet[T]) bool {
	if P.Count() != other.Count() {
		return false
	}

	return other.IsSubset(P)
}
