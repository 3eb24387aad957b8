package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-mapper/pkg/crypto_util"
)

func TestPubKeyToAddressRoundTrip(t *testing.T) {
	priv, err := crypto_util.GenerateSecp256k1Key()
	require.NoError(t, err)

	gen := NewGenerator(TestNetVersion)
	addr, err := gen.PubKeyToAddress(priv.PubKey().SerializeCompressed())
	require.NoError(t, err)
	assert.NotEmpty(t, addr)

	again, err := gen.PubKeyToAddress(priv.PubKey().SerializeCompressed())
	require.NoError(t, err)
	assert.Equal(t, addr, again, "同一公钥应得到同一地址")

	assert.NoError(t, gen.Validate(addr))
	assert.ErrorIs(t, NewGenerator(MainNetVersion).Validate(addr), ErrWrongNetwork)
}

func TestValidateRejectsGarbage(t *testing.T) {
	gen := NewGenerator(TestNetVersion)

	assert.ErrorIs(t, gen.Validate("foo"), ErrInvalidAddress)
	assert.ErrorIs(t, gen.Validate(""), ErrInvalidAddress)
}

func TestPubKeyToAddressEmpty(t *testing.T) {
	_, err := NewGenerator(TestNetVersion).PubKeyToAddress(nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestVersionForNetwork(t *testing.T) {
	v, err := VersionForNetwork("testnet")
	assert.NoError(t, err)
	assert.Equal(t, TestNetVersion, v)

	v, err = VersionForNetwork("")
	assert.NoError(t, err)
	assert.Equal(t, MainNetVersion, v)

	_, err = VersionForNetwork("regtest")
	assert.Error(t, err)
}
