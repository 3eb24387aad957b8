package bip32

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountIsDeterministic(t *testing.T) {
	seed, _ := hex.DecodeString("fffcf9f6da3247d8a846f4b6113e6173")

	d1, err := NewDeriver(seed)
	require.NoError(t, err)
	d2, err := NewDeriver(seed)
	require.NoError(t, err)

	a, err := d1.Account(0)
	require.NoError(t, err)
	b, err := d2.Account(0)
	require.NoError(t, err)

	assert.Equal(t, a.Primary.Serialize(), b.Primary.Serialize())
	assert.Equal(t, a.Remote.Serialize(), b.Remote.Serialize())
}

func TestAccountRemoteKeyIsDistinct(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	d, err := NewDeriver(seed)
	require.NoError(t, err)

	first, err := d.Account(0)
	require.NoError(t, err)
	second, err := d.Account(1)
	require.NoError(t, err)

	assert.NotEqual(t, first.Primary.Serialize(), first.Remote.Serialize(), "远程收获密钥必须不同于主密钥")
	assert.NotEqual(t, first.Primary.Serialize(), second.Primary.Serialize())
}

func TestNewDeriverRejectsShortSeed(t *testing.T) {
	_, err := NewDeriver([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidSeed)
}
