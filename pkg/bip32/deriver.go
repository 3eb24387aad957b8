package bip32

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// 账户派生路径: m/44'/CoinType'/index'/0' 为主签名密钥, m/44'/CoinType'/index'/1' 为远程收获密钥
const (
	Purpose  uint32 = 44
	CoinType uint32 = 43

	primaryBranch uint32 = 0
	remoteBranch  uint32 = 1
)

var ErrInvalidSeed = errors.New("无效的种子")

// AccountKeys 是一个钱包账户需要的两把私钥
type AccountKeys struct {
	Primary *btcec.PrivateKey
	Remote  *btcec.PrivateKey
}

// Deriver 从 BIP-39 种子派生账户密钥
type Deriver struct {
	master *hdkeychain.ExtendedKey
}

func NewDeriver(seed []byte) (*Deriver, error) {
	if len(seed) < hdkeychain.MinSeedBytes || len(seed) > hdkeychain.MaxSeedBytes {
		return nil, ErrInvalidSeed
	}
	// 只用于私钥派生, 网络参数仅影响 xprv 的序列化前缀
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("生成主密钥失败: %w", err)
	}
	return &Deriver{master: master}, nil
}

// Account 派生第 index 个账户的主密钥和远程收获密钥
func (d *Deriver) Account(index uint32) (*AccountKeys, error) {
	primary, err := d.derive(Purpose, CoinType, index, primaryBranch)
	if err != nil {
		return nil, err
	}
	remote, err := d.derive(Purpose, CoinType, index, remoteBranch)
	if err != nil {
		return nil, err
	}
	return &AccountKeys{Primary: primary, Remote: remote}, nil
}

// derive 每一级都是 hardened 派生
func (d *Deriver) derive(path ...uint32) (*btcec.PrivateKey, error) {
	key := d.master
	for _, segment := range path {
		child, err := key.Derive(hdkeychain.HardenedKeyStart + segment)
		if err != nil {
			return nil, fmt.Errorf("派生子密钥失败: %w", err)
		}
		key = child
	}
	return key.ECPrivKey()
}
