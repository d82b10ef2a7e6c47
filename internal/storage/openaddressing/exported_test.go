package openaddressing

import (
	"testing"

	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/conf"
	"github.com/gostonefire/adt/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntStorage(t *testing.T, slots int64) *OAStorage[int, string] {
	s, err := NewOAStorage[int, string](OAConf[int]{NumberOfSlots: slots, Hasher: hashfunc.Integer[int]()})
	require.NoError(t, err, "create new OAStorage instance")
	return s
}

func TestNewOAStorage(t *testing.T) {
	t.Run("creates a new OAStorage instance", func(t *testing.T) {
		// Execute
		s, err := NewOAStorage[string, int](OAConf[string]{NumberOfSlots: 8, Hasher: hashfunc.String()})

		// Check
		assert.NoError(t, err, "create new OAStorage instance")
		assert.Len(t, s.keys, 8, "keys allocated")
		assert.Len(t, s.values, 8, "values allocated")
		assert.Len(t, s.inUse, 8, "flags allocated")
		assert.NotNil(t, s.hashAlgorithm, "hash algorithm is assigned")
	})

	t.Run("refuses invalid configuration", func(t *testing.T) {
		_, err := NewOAStorage[int, int](OAConf[int]{NumberOfSlots: -1, Hasher: hashfunc.Integer[int]()})
		assert.Error(t, err, "negative slots")

		_, err = NewOAStorage[int, int](OAConf[int]{NumberOfSlots: 4})
		assert.Error(t, err, "no hasher")
	})
}

func TestOAStorage_Set(t *testing.T) {
	t.Run("stores in the hashed slot", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)

		// Execute
		err := s.Set(13, "thirteen")

		// Check
		assert.NoError(t, err, "stored")
		slot, err := s.GetSlot(5)
		assert.NoError(t, err, "gets slot")
		assert.True(t, slot.InUse, "slot in use")
		assert.Equal(t, 13, slot.Key, "key")
		assert.Equal(t, "thirteen", slot.Value, "value")
		assert.Equal(t, int64(1), s.GetStorageParameters().Records, "counted")
	})

	t.Run("overwrites same key", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)
		require.NoError(t, s.Set(5, "a"))

		// Execute
		err := s.Set(5, "b")

		// Check
		assert.NoError(t, err, "overwritten")
		slot, _ := s.Get(5)
		assert.Equal(t, "b", slot.Value, "new value")
		assert.Equal(t, int64(1), s.GetStorageParameters().Records, "not counted twice")
	})

	t.Run("rejects a colliding key", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)
		require.NoError(t, s.Set(5, "five"))

		// Execute
		err := s.Set(13, "thirteen")

		// Check
		assert.ErrorIs(t, err, status.Collision{}, "collision")
		slot, _ := s.Get(5)
		assert.Equal(t, "five", slot.Value, "first key intact")
		assert.False(t, s.IsKey(13), "second key not stored")
	})

	t.Run("stores the zero value", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)

		// Execute
		err := s.Set(0, "")

		// Check
		assert.NoError(t, err, "stored")
		assert.True(t, s.IsKey(0), "zero key with zero value is stored")
	})
}

func TestOAStorage_Get(t *testing.T) {
	t.Run("tells collision from not found", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)
		require.NoError(t, s.Set(5, "five"))

		// Execute
		_, errCollision := s.Get(13)
		_, errNotFound := s.Get(6)

		// Check
		assert.ErrorIs(t, errCollision, status.Collision{}, "collision")
		assert.ErrorIs(t, errNotFound, status.NotFound{}, "not found")
	})
}

func TestOAStorage_Delete(t *testing.T) {
	t.Run("releases the slot", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)
		require.NoError(t, s.Set(5, "five"))

		// Execute
		err := s.Delete(5)

		// Check
		assert.NoError(t, err, "deleted")
		assert.False(t, s.IsKey(5), "gone")
		assert.Equal(t, int64(0), s.GetStorageParameters().Records, "records")
		assert.NoError(t, s.Set(13, "thirteen"), "slot usable by another key")
	})

	t.Run("leaves the slot on collision", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)
		require.NoError(t, s.Set(5, "five"))

		// Execute
		err := s.Delete(13)

		// Check
		assert.ErrorIs(t, err, status.Collision{}, "collision")
		assert.True(t, s.IsKey(5), "occupant intact")
	})

	t.Run("fails on empty slot", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)

		// Execute
		err := s.Delete(5)

		// Check
		assert.ErrorIs(t, err, status.NotFound{}, "not found")
	})
}

func TestOAStorage_GetSlot(t *testing.T) {
	t.Run("fails outside the table", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)

		// Execute
		_, err := s.GetSlot(8)

		// Check
		assert.ErrorIs(t, err, status.OutOfRange{}, "out of range")
	})
}

func TestOAStorage_KeysAndClear(t *testing.T) {
	t.Run("lists keys in slot order and clears", func(t *testing.T) {
		// Prepare
		s := newIntStorage(t, 8)
		for _, k := range []int{7, 2, 12} {
			require.NoError(t, s.Set(k, "v"))
		}

		// Execute
		keys := s.Keys()
		s.Clear()

		// Check
		assert.Equal(t, []int{2, 12, 7}, keys, "slot order")
		assert.Empty(t, s.Keys(), "no keys after clear")
		assert.Equal(t, conf.SingleSlot, s.GetStorageParameters().CollisionResolutionTechnique, "technique")
		assert.Equal(t, int64(0), s.GetStorageParameters().Records, "records")
	})
}
