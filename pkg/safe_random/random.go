package safe_random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// Reader 是全局共享的加密安全随机源, 测试中可以替换为确定性的 reader
var Reader io.Reader = rand.Reader

// Bytes 返回 n 个安全随机字节 (用于 salt / nonce / 私钥)
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := Fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Fill 用随机数据填满 b
func Fill(b []byte) error {
	if _, err := io.ReadFull(Reader, b); err != nil {
		return fmt.Errorf("生成随机字节失败: %w", err)
	}
	return nil
}

// HexString 返回 n 字节随机数的 hex 编码 (长度为 2n)
func HexString(n int) (string, error) {
	b, err := Bytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// UUID 生成 v4 格式的随机 ID, keystore 文件用它做标识
func UUID() (string, error) {
	b, err := Bytes(16)
	if err != nil {
		return "", err
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
