package service

import (
	"context"

	"github.com/btcsuite/btcd/btcec/v2"

	"wallet-mapper/internal/model"
)

// TimeProvider 提供网络时间
type TimeProvider interface {
	CurrentTime() model.TimeInstant
}

// WalletServices 按 (钱包名, 密码) 打开钱包
// 每次调用都重新解密, 不保留已解锁的钱包
type WalletServices interface {
	// Open 返回 (nil, nil) 视为没有钱包
	Open(ctx context.Context, pair model.WalletNamePasswordPair) (Wallet, error)
}

// Wallet 已解锁的钱包句柄, 用完必须 Close
type Wallet interface {
	// AccountPrivateKey 地址不在钱包内时返回 errno.ErrUnknownSigner
	AccountPrivateKey(addr model.Address) (*btcec.PrivateKey, error)
	// WalletAccount 返回账户记录 (包含远程收获私钥)
	WalletAccount(addr model.Address) (*model.WalletAccount, error)
	// Close 清零内存中的私钥
	Close()
}

// AccountLookup 账户目录, 查不到公钥时返回 address-only 账户, 不返回错误
type AccountLookup interface {
	FindByAddress(ctx context.Context, addr model.Address) model.Account
}

type MessageCodec interface {
	EncodePlain(plain []byte) model.Message
	EncodeSecure(plain []byte, senderPriv *btcec.PrivateKey, recipientPub *btcec.PublicKey) (model.Message, error)
}

// FeeSchedule 按金额档位计算基础手续费
type FeeSchedule interface {
	BaseFee(amount model.Amount) model.Amount
	MessageFeeUnit() model.Amount
}
