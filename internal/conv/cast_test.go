//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		var overflow *ErrOverflow
		require.ErrorAs(t, err, &overflow)
		assert.Equal(t, "uint32", overflow.Target)
		assert.Equal(t, "-1", overflow.Value)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, math.MaxUint32, got)
}

func TestIntToUint(t *testing.T) {
	got, err := IntToUint(42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), got)

	_, err = IntToUint(-42)
	assert.Error(t, err)
}

func TestUintToInt(t *testing.T) {
	got, err := UintToInt(42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = UintToInt(math.MaxUint)
	assert.EqualError(t, err, "integer overflow: 18446744073709551615 cannot be converted to int")
}
