package crypto_util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAESGCM(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef") // 32 字节用于 AES-256
	plaintext := []byte("这是一条用于 AES-GCM 测试的秘密消息")

	ciphertext, err := EncryptAESGCM(key, plaintext)
	require.NoError(t, err)

	decrypted, err := DecryptAESGCM(key, ciphertext)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(plaintext, decrypted), "解密后的消息与明文不匹配")
}

func TestAESGCM_AADMismatch(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")

	ciphertext, err := EncryptAESGCMWithAAD(key, []byte("payload"), []byte("salt-a"))
	require.NoError(t, err)

	_, err = DecryptAESGCMWithAAD(key, ciphertext, []byte("salt-b"))
	assert.Error(t, err)
}

func TestAESGCM_InvalidKey(t *testing.T) {
	_, err := EncryptAESGCM([]byte("shortkey"), []byte("test"))
	assert.Error(t, err, "期望因密钥长度无效而报错")
}

func TestAESGCM_ShortCiphertext(t *testing.T) {
	key := []byte("0123456789abcdef")
	_, err := DecryptAESGCM(key, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
