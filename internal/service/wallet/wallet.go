package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/address"
	"wallet-mapper/pkg/errno"
)

// UnlockedWallet 解密后的钱包, 只在一次调用内持有, 用完 Close
type UnlockedWallet struct {
	name     model.WalletName
	accounts map[model.Address]*model.WalletAccount
	order    []model.Address
}

func newUnlockedWallet(name model.WalletName) *UnlockedWallet {
	return &UnlockedWallet{name: name, accounts: make(map[model.Address]*model.WalletAccount)}
}

func (w *UnlockedWallet) add(gen *address.Generator, primary, remote *btcec.PrivateKey) error {
	addr, err := gen.PubKeyToAddress(primary.PubKey().SerializeCompressed())
	if err != nil {
		return err
	}
	acc := &model.WalletAccount{Address: model.Address(addr), PrimaryKey: primary}
	if remote != nil {
		remoteAddr, err := gen.PubKeyToAddress(remote.PubKey().SerializeCompressed())
		if err != nil {
			return err
		}
		acc.RemoteAddress = model.Address(remoteAddr)
		acc.RemoteKey = remote
	}
	if _, dup := w.accounts[acc.Address]; dup {
		return fmt.Errorf("账户 %s 已在钱包中", acc.Address)
	}
	w.accounts[acc.Address] = acc
	w.order = append(w.order, acc.Address)
	return nil
}

func (w *UnlockedWallet) Name() model.WalletName { return w.name }

// Addresses 按添加顺序返回账户地址
func (w *UnlockedWallet) Addresses() []model.Address {
	out := make([]model.Address, len(w.order))
	copy(out, w.order)
	return out
}

func (w *UnlockedWallet) AccountPrivateKey(addr model.Address) (*btcec.PrivateKey, error) {
	acc, err := w.WalletAccount(addr)
	if err != nil {
		return nil, err
	}
	return acc.PrimaryKey, nil
}

func (w *UnlockedWallet) WalletAccount(addr model.Address) (*model.WalletAccount, error) {
	acc, ok := w.accounts[addr]
	if !ok {
		return nil, errno.ErrUnknownSigner.WithMessage(fmt.Sprintf("address %s is not part of wallet %s", addr, w.name))
	}
	return acc, nil
}

// Close 清零所有私钥, 之后钱包不可再用
func (w *UnlockedWallet) Close() {
	for _, acc := range w.accounts {
		if acc.PrimaryKey != nil {
			acc.PrimaryKey.Zero()
		}
		if acc.RemoteKey != nil {
			acc.RemoteKey.Zero()
		}
	}
	w.accounts = map[model.Address]*model.WalletAccount{}
	w.order = nil
}
