package kernel_test

import (
	"testing"

	"fueldelivery/internal/core/domain/model/kernel"
	"fueldelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		seen := make(map[string]struct{}, 100)
		for range 100 {
			seen[kernel.NewUUID().String()] = struct{}{}
		}
		assert.Len(t, seen, 100)
	})
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	t.Run("should accept supported formats", func(t *testing.T) {
		for _, input := range []string{
			canonical,
			"{" + canonical + "}",
			"urn:uuid:" + canonical,
			"6ba7b8109dad11d180b400c04fd430c8",
		} {
			id, err := kernel.UUIDFromString(input)
			require.NoError(t, err, input)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{"", "station-1", "6ba7b810-9dad-11d1-80b4"} {
			_, err := kernel.UUIDFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip through Bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})

	t.Run("should reject all-zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_IsEqualAndValidate(t *testing.T) {
	id := kernel.NewUUID()
	same := id

	assert.True(t, id.IsEqual(same))
	assert.False(t, id.IsEqual(kernel.NewUUID()))

	var zero kernel.UUID
	assert.True(t, zero.IsEqual(kernel.UUID{}))
	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_Immutability(t *testing.T) {
	id := kernel.NewUUID()
	before := id.String()

	raw := id.Bytes()
	raw[0] ^= 0xFF

	assert.Equal(t, before, id.String())
}
