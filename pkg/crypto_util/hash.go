package crypto_util

import (
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Keccak256 计算输入的 Keccak256 哈希值 (地址派生使用)
func Keccak256(data ...[]byte) []byte {
	hash := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hash.Write(d)
	}
	return hash.Sum(nil)
}

// Blake3MAC 使用 32 字节密钥计算 keyed BLAKE3 摘要, keystore 用它校验密码
func Blake3MAC(key []byte, data []byte) []byte {
	h := blake3.New(32, key)
	h.Write(data)
	return h.Sum(nil)
}
