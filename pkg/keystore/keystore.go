package keystore

import (
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/scrypt"

	"wallet-mapper/pkg/crypto_util"
	"wallet-mapper/pkg/safe_random"
)

// EncryptedKeyJSON 沿用 Ethereum Keystore V3 的结构风格,
// 但 ciphertext 里存的是整个钱包 (多个账户私钥) 的 JSON, 而不是单个私钥
type EncryptedKeyJSON struct {
	Crypto  CryptoJSON `json:"crypto"`
	Id      string     `json:"id"`
	Version int        `json:"version"`
}

type CryptoJSON struct {
	Cipher       string       `json:"cipher"`       // "aes-256-gcm"
	CipherText   string       `json:"ciphertext"`   // Hex string (nonce + 密文)
	CipherParams CipherParams `json:"cipherparams"` // 保留字段, nonce 已经前置在密文里
	KDF          string       `json:"kdf"`          // "scrypt"
	KDFParams    KDFParams    `json:"kdfparams"`
	MAC          string       `json:"mac"` // Hex string, blake3(derivedKey, ciphertext)
}

type CipherParams struct {
	IV string `json:"iv,omitempty"`
}

type KDFParams struct {
	DKLen int    `json:"dklen"`
	N     int    `json:"n"`
	R     int    `json:"r"`
	P     int    `json:"p"`
	Salt  string `json:"salt"`
}

// Params 是 scrypt 的成本参数
type Params struct {
	N int
	R int
	P int
}

const (
	version     = 3
	saltLen     = 32
	scryptDKLen = 32
)

// DefaultParams: N=2^18 (~256MB 内存), 生产环境使用
var DefaultParams = Params{N: 262144, R: 8, P: 1}

var (
	ErrInvalidPassword = errors.New("invalid password or corrupted data (MAC mismatch)")
	ErrUnsupported     = errors.New("unsupported keystore format")
)

// Encrypt 用密码加密任意明文 (钱包 JSON)
// password 由调用方负责清零
func Encrypt(plaintext, password []byte, params Params) (*EncryptedKeyJSON, error) {
	salt, err := safe_random.Bytes(saltLen)
	if err != nil {
		return nil, err
	}

	derivedKey, err := scrypt.Key(password, salt, params.N, params.R, params.P, scryptDKLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer crypto_util.Zero(derivedKey)

	ciphertext, err := crypto_util.EncryptAESGCM(derivedKey, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}

	id, err := safe_random.UUID()
	if err != nil {
		return nil, err
	}

	return &EncryptedKeyJSON{
		Version: version,
		Id:      id,
		Crypto: CryptoJSON{
			Cipher:     "aes-256-gcm",
			CipherText: hex.EncodeToString(ciphertext),
			KDF:        "scrypt",
			KDFParams: KDFParams{
				DKLen: scryptDKLen,
				N:     params.N,
				R:     params.R,
				P:     params.P,
				Salt:  hex.EncodeToString(salt),
			},
			MAC: hex.EncodeToString(crypto_util.Blake3MAC(derivedKey, ciphertext)),
		},
	}, nil
}

// Decrypt 解密 Keystore JSON, 返回明文; 调用方用完后应清零
func Decrypt(keyJSON *EncryptedKeyJSON, password []byte) ([]byte, error) {
	if keyJSON.Version != version || keyJSON.Crypto.KDF != "scrypt" || keyJSON.Crypto.Cipher != "aes-256-gcm" {
		return nil, ErrUnsupported
	}

	salt, err := hex.DecodeString(keyJSON.Crypto.KDFParams.Salt)
	if err != nil {
		return nil, fmt.Errorf("invalid salt: %w", err)
	}
	ciphertext, err := hex.DecodeString(keyJSON.Crypto.CipherText)
	if err != nil {
		return nil, fmt.Errorf("invalid ciphertext: %w", err)
	}
	mac, err := hex.DecodeString(keyJSON.Crypto.MAC)
	if err != nil {
		return nil, fmt.Errorf("invalid mac: %w", err)
	}

	kdf := keyJSON.Crypto.KDFParams
	derivedKey, err := scrypt.Key(password, salt, kdf.N, kdf.R, kdf.P, kdf.DKLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer crypto_util.Zero(derivedKey)

	if subtle.ConstantTimeCompare(mac, crypto_util.Blake3MAC(derivedKey, ciphertext)) != 1 {
		return nil, ErrInvalidPassword
	}

	plaintext, err := crypto_util.DecryptAESGCM(derivedKey, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}

// SaveToFile 先写临时文件再 rename, 避免写到一半的钱包文件
func (k *EncryptedKeyJSON) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".keystore-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}

// LoadFromFile 从文件加载
func LoadFromFile(filename string) (*EncryptedKeyJSON, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var k EncryptedKeyJSON
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keystore: %w", err)
	}
	return &k, nil
}
