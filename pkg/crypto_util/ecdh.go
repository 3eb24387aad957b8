package crypto_util

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/hkdf"

	"wallet-mapper/pkg/safe_random"
)

// ------------------------------------------------------------------------------------------------
// secp256k1 密钥对与 ECDH
// 账户主密钥、远程收获 (remote harvesting) 密钥都使用这条曲线
// ------------------------------------------------------------------------------------------------

const PrivateKeySize = btcec.PrivKeyBytesLen

var ErrInvalidPrivateKey = errors.New("无效的私钥")

// GenerateSecp256k1Key 生成新的 secp256k1 私钥
func GenerateSecp256k1Key() (*btcec.PrivateKey, error) {
	for {
		raw, err := safe_random.Bytes(PrivateKeySize)
		if err != nil {
			return nil, err
		}
		priv, err := ParsePrivateKey(raw)
		Zero(raw)
		if err == nil {
			return priv, nil
		}
	}
}

// ParsePrivateKey 从 32 字节标量恢复私钥, 全零或超出曲线阶的标量会被拒绝
func ParsePrivateKey(raw []byte) (*btcec.PrivateKey, error) {
	if len(raw) != PrivateKeySize {
		return nil, fmt.Errorf("%w: 长度 %d", ErrInvalidPrivateKey, len(raw))
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow || scalar.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	priv, _ := btcec.PrivKeyFromBytes(raw)
	return priv, nil
}

// ParsePublicKey 解析压缩或非压缩格式的公钥
func ParsePublicKey(raw []byte) (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(raw)
}

// DeriveSharedKey 通过 ECDH 计算共享秘密, 再用 HKDF-SHA256(salt, info) 派生 32 字节对称密钥。
// 发送方 (priv_a, pub_b) 与接收方 (priv_b, pub_a) 得到相同结果。
func DeriveSharedKey(priv *btcec.PrivateKey, pub *btcec.PublicKey, salt, info []byte) ([]byte, error) {
	if priv == nil || pub == nil {
		return nil, errors.New("ECDH 需要私钥和公钥")
	}
	shared := btcec.GenerateSharedSecret(priv, pub)
	defer Zero(shared)

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, salt, info), key); err != nil {
		return nil, fmt.Errorf("HKDF 派生失败: %w", err)
	}
	return key, nil
}
