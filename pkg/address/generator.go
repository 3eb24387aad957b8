package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"

	"wallet-mapper/pkg/crypto_util"
)

// 网络版本字节, 编码在地址的第一个字节里
const (
	MainNetVersion byte = 0x68
	TestNetVersion byte = 0x98
)

var (
	ErrInvalidAddress = errors.New("无效的地址")
	ErrWrongNetwork   = errors.New("地址不属于当前网络")
)

// Generator 账户地址生成器
// 地址 = Base58Check(version, RIPEMD160(SHA256(Keccak256(pubkey))))
type Generator struct {
	version byte
}

func NewGenerator(version byte) *Generator {
	return &Generator{version: version}
}

// PubKeyToAddress 将压缩公钥 (33 bytes) 转换为地址
func (g *Generator) PubKeyToAddress(pubKeyBytes []byte) (string, error) {
	if len(pubKeyBytes) == 0 {
		return "", fmt.Errorf("%w: 空公钥", ErrInvalidAddress)
	}
	hash := btcutil.Hash160(crypto_util.Keccak256(pubKeyBytes))
	return base58.CheckEncode(hash, g.version), nil
}

// Validate 校验地址的校验和、长度以及网络版本
func (g *Generator) Validate(addr string) error {
	decoded, version, err := base58.CheckDecode(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(decoded) != 20 {
		return fmt.Errorf("%w: 长度 %d", ErrInvalidAddress, len(decoded))
	}
	if version != g.version {
		return ErrWrongNetwork
	}
	return nil
}

// VersionForNetwork "mainnet" / "testnet" 对应的版本字节
func VersionForNetwork(network string) (byte, error) {
	switch network {
	case "", "mainnet":
		return MainNetVersion, nil
	case "testnet":
		return TestNetVersion, nil
	}
	return 0, fmt.Errorf("未知网络: %s", network)
}
