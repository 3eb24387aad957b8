package model

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
)

// KeyPair 私钥可选; 只有公钥的 KeyPair 用于表示外部账户
type KeyPair struct {
	privateKey *btcec.PrivateKey
	publicKey  *btcec.PublicKey
}

func NewKeyPair(priv *btcec.PrivateKey) *KeyPair {
	return &KeyPair{privateKey: priv, publicKey: priv.PubKey()}
}

func NewPublicKeyPair(pub *btcec.PublicKey) *KeyPair {
	return &KeyPair{publicKey: pub}
}

func (k *KeyPair) PrivateKey() *btcec.PrivateKey { return k.privateKey }

func (k *KeyPair) PublicKey() *btcec.PublicKey { return k.publicKey }

func (k *KeyPair) HasPrivateKey() bool { return k != nil && k.privateKey != nil }

// PublicKeyHex 压缩公钥的 hex 编码
func (k *KeyPair) PublicKeyHex() string {
	if k == nil || k.publicKey == nil {
		return ""
	}
	return hex.EncodeToString(k.publicKey.SerializeCompressed())
}

// Account 链上账户. KeyPair 为 nil 表示 address-only (从未在网络上见过公钥)
type Account struct {
	Address Address
	KeyPair *KeyPair
}

func NewAddressOnlyAccount(addr Address) Account {
	return Account{Address: addr}
}

func (a Account) HasPublicKey() bool {
	return a.KeyPair != nil && a.KeyPair.publicKey != nil
}

// WalletAccount 钱包内的账户记录
// RemoteKey 是委托收获用的远程私钥, 与主签名私钥不同
type WalletAccount struct {
	Address       Address
	PrimaryKey    *btcec.PrivateKey
	RemoteAddress Address
	RemoteKey     *btcec.PrivateKey
}

// RemoteAccount 由远程私钥构造的账户
func (w *WalletAccount) RemoteAccount() Account {
	return Account{Address: w.RemoteAddress, KeyPair: NewKeyPair(w.RemoteKey)}
}
