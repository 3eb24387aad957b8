package crypto_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSharedKeyIsSymmetric(t *testing.T) {
	alice, err := GenerateSecp256k1Key()
	require.NoError(t, err)
	bob, err := GenerateSecp256k1Key()
	require.NoError(t, err)

	salt := []byte("0123456789abcdef0123456789abcdef")
	info := []byte("test")

	k1, err := DeriveSharedKey(alice, bob.PubKey(), salt, info)
	require.NoError(t, err)
	k2, err := DeriveSharedKey(bob, alice.PubKey(), salt, info)
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)

	k3, err := DeriveSharedKey(alice, bob.PubKey(), []byte("another salt"), info)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3, "不同 salt 应派生不同密钥")
}

func TestDeriveSharedKeyRequiresKeys(t *testing.T) {
	alice, err := GenerateSecp256k1Key()
	require.NoError(t, err)

	_, err = DeriveSharedKey(alice, nil, nil, nil)
	assert.Error(t, err)
}

func TestParsePrivateKey(t *testing.T) {
	priv, err := GenerateSecp256k1Key()
	require.NoError(t, err)

	restored, err := ParsePrivateKey(priv.Serialize())
	require.NoError(t, err)
	assert.True(t, restored.PubKey().IsEqual(priv.PubKey()))

	_, err = ParsePrivateKey(make([]byte, PrivateKeySize))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey, "全零标量不是合法私钥")

	_, err = ParsePrivateKey([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)
}

func TestParsePublicKey(t *testing.T) {
	priv, err := GenerateSecp256k1Key()
	require.NoError(t, err)

	pub, err := ParsePublicKey(priv.PubKey().SerializeCompressed())
	require.NoError(t, err)
	assert.True(t, pub.IsEqual(priv.PubKey()))

	_, err = ParsePublicKey([]byte("not a key"))
	assert.Error(t, err)
}
