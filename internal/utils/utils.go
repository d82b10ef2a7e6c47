package utils

import "github.com/gostonefire/adt/internal/conf"

// IndexOf - Returns the index of the first element in s equal to v, or -1 if there is none
func IndexOf[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}

	return -1
}

// RemoveIndex - Removes the element at index i from s, keeping the order of the remaining elements.
// The vacated tail slot is zeroed so that it doesn't keep a reference alive.
func RemoveIndex[T any](s []T, i int) []T {
	last := len(s) - 1
	copy(s[i:], s[i+1:])
	var zero T
	s[last] = zero

	return s[:last]
}

// GrowCapacity - Returns the capacity a full buffer of the given capacity grows to
func GrowCapacity(capacity int) int {
	return capacity * conf.GrowthFactor
}

// ShrinkCapacity - Returns the capacity a buffer shrinks to, that is capacity / conf.ShrinkFactor rounded down
// but never below conf.MinCapacity
func ShrinkCapacity(capacity int) int {
	return Floor(int(float64(capacity) / conf.ShrinkFactor))
}

// ShouldShrink - Returns true if count elements occupy less than half of capacity
func ShouldShrink(count, capacity int) bool {
	return count < capacity/2
}

// Floor - Returns capacity raised to conf.MinCapacity if it is lower
func Floor(capacity int) int {
	if capacity < conf.MinCapacity {
		return conf.MinCapacity
	}

	return capacity
}
