package crypto_util

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"wallet-mapper/pkg/safe_random"
)

var ErrCiphertextTooShort = errors.New("密文太短")

// EncryptAESGCM 使用给定的密钥对明文进行 AES-GCM 加密。
// 密钥必须是 16、24 或 32 字节长，分别对应 AES-128、AES-192 或 AES-256。
// 返回 nonce + 密文。
func EncryptAESGCM(key, plaintext []byte) ([]byte, error) {
	return EncryptAESGCMWithAAD(key, plaintext, nil)
}

// EncryptAESGCMWithAAD 同 EncryptAESGCM, 额外认证 aad (不加密, 但被篡改会导致解密失败)
func EncryptAESGCMWithAAD(key, plaintext, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := safe_random.Bytes(gcm.NonceSize())
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, aad), nil
}

// DecryptAESGCM 使用给定的密钥对 AES-GCM 密文（nonce + 加密数据）进行解密。
func DecryptAESGCM(key, ciphertext []byte) ([]byte, error) {
	return DecryptAESGCMWithAAD(key, ciphertext, nil)
}

func DecryptAESGCMWithAAD(key, ciphertext, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, aad)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Zero 覆写敏感数据 (派生密钥、解密后的明文等)
func Zero(b []byte) {
	clear(b)
}
