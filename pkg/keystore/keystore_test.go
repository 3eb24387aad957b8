package keystore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试用低成本参数, 否则每次解密要 ~1s
var testParams = Params{N: 1024, R: 8, P: 1}

func TestEncryptDecrypt(t *testing.T) {
	payload := []byte(`{"accounts":[{"address":"abc"}]}`)
	password := []byte("secure-password")

	keyJSON, err := Encrypt(payload, password, testParams)
	require.NoError(t, err)
	assert.Equal(t, "aes-256-gcm", keyJSON.Crypto.Cipher)
	assert.Equal(t, 1024, keyJSON.Crypto.KDFParams.N)

	plaintext, err := Decrypt(keyJSON, password)
	require.NoError(t, err)
	assert.Equal(t, payload, plaintext)

	_, err = Decrypt(keyJSON, []byte("wrong-password"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestDecryptRejectsUnknownFormat(t *testing.T) {
	keyJSON, err := Encrypt([]byte("x"), []byte("p"), testParams)
	require.NoError(t, err)

	keyJSON.Crypto.KDF = "pbkdf2"
	_, err = Decrypt(keyJSON, []byte("p"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFileSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "w.wlt")
	password := []byte("123456")

	keyJSON, err := Encrypt([]byte("wallet payload"), password, testParams)
	require.NoError(t, err)
	require.NoError(t, keyJSON.SaveToFile(filename))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFromFile(filename)
	require.NoError(t, err)
	assert.Equal(t, keyJSON.Id, loaded.Id)

	decrypted, err := Decrypt(loaded, password)
	require.NoError(t, err)
	assert.Equal(t, "wallet payload", string(decrypted))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "none.wlt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
