package wallet

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"go.uber.org/zap"

	"wallet-mapper/internal/model"
	"wallet-mapper/internal/service"
	"wallet-mapper/pkg/address"
	"wallet-mapper/pkg/bip32"
	"wallet-mapper/pkg/config"
	"wallet-mapper/pkg/crypto_util"
	"wallet-mapper/pkg/errno"
	"wallet-mapper/pkg/keystore"
	"wallet-mapper/pkg/logger"
)

const fileExt = ".wlt"

var (
	ErrWalletNotFound    = errors.New("钱包不存在")
	ErrWalletExists      = errors.New("钱包已存在")
	ErrInvalidWalletName = errors.New("无效的钱包名")
)

// payload 是钱包解密后的明文结构
type payload struct {
	Accounts []accountEntry `json:"accounts"`
}

type accountEntry struct {
	PrimaryKey string `json:"primary_key"`          // hex
	RemoteKey  string `json:"remote_key,omitempty"` // hex, 远程收获私钥
}

// Store 基于目录的钱包存储, 每个钱包一个加密文件
// Open 是纯查找: 每次都读文件并解密, 不保留已解锁的钱包
type Store struct {
	mu     sync.Mutex // 串行化写操作
	dir    string
	params keystore.Params
	gen    *address.Generator
}

var _ service.WalletServices = (*Store)(nil)

func NewStore(dir string, params keystore.Params, gen *address.Generator) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("创建钱包目录失败: %w", err)
	}
	return &Store{dir: dir, params: params, gen: gen}, nil
}

func NewStoreFromConfig(cfg config.WalletConfig) (*Store, error) {
	version, err := address.VersionForNetwork(cfg.Network)
	if err != nil {
		return nil, err
	}
	params := keystore.Params{N: cfg.ScryptN, R: cfg.ScryptR, P: cfg.ScryptP}
	if params.N == 0 {
		params = keystore.DefaultParams
	}
	return NewStore(cfg.Dir, params, address.NewGenerator(version))
}

// Create 新建钱包, 包含一个随机生成的账户 (主密钥 + 远程收获密钥)
func (s *Store) Create(ctx context.Context, pair model.WalletNamePasswordPair) (*UnlockedWallet, error) {
	primary, err := crypto_util.GenerateSecp256k1Key()
	if err != nil {
		return nil, err
	}
	remote, err := crypto_util.GenerateSecp256k1Key()
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, pair, []bip32.AccountKeys{{Primary: primary, Remote: remote}})
}

// Import 用给定的账户密钥新建钱包, 例如从助记词派生的密钥
func (s *Store) Import(ctx context.Context, pair model.WalletNamePasswordPair, keys []bip32.AccountKeys) (*UnlockedWallet, error) {
	if err := checkPair(pair); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(pair.Name)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrWalletExists, pair.Name)
	}

	w := newUnlockedWallet(pair.Name)
	for _, k := range keys {
		if err := w.add(s.gen, k.Primary, k.Remote); err != nil {
			w.Close()
			return nil, err
		}
	}
	if err := s.save(path, w, pair.Password.Bytes()); err != nil {
		w.Close()
		return nil, err
	}

	logger.Info("wallet created", zap.String("wallet", pair.Name.String()), zap.Int("accounts", len(keys)))
	return w, nil
}

// Open 实现 service.WalletServices
func (s *Store) Open(ctx context.Context, pair model.WalletNamePasswordPair) (service.Wallet, error) {
	w, err := s.Unlock(ctx, pair)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Unlock 读取并解密钱包文件
func (s *Store) Unlock(ctx context.Context, pair model.WalletNamePasswordPair) (*UnlockedWallet, error) {
	if err := checkPair(pair); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.load(s.path(pair.Name), pair.Name, pair.Password.Bytes())
}

// AddAccount 向钱包追加一个随机账户, 返回新账户地址
func (s *Store) AddAccount(ctx context.Context, pair model.WalletNamePasswordPair) (model.Address, error) {
	if err := checkPair(pair); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(pair.Name)
	w, err := s.load(path, pair.Name, pair.Password.Bytes())
	if err != nil {
		return "", err
	}
	defer w.Close()

	primary, err := crypto_util.GenerateSecp256k1Key()
	if err != nil {
		return "", err
	}
	remote, err := crypto_util.GenerateSecp256k1Key()
	if err != nil {
		return "", err
	}
	if err := w.add(s.gen, primary, remote); err != nil {
		return "", err
	}
	if err := s.save(path, w, pair.Password.Bytes()); err != nil {
		return "", err
	}

	addr := w.order[len(w.order)-1]
	logger.Info("wallet account added", zap.String("wallet", pair.Name.String()), zap.String("address", addr.String()))
	return addr, nil
}

// ChangePassword 用新密码重新加密钱包
func (s *Store) ChangePassword(ctx context.Context, pair model.WalletNamePasswordPair, newPassword model.WalletPassword) error {
	if err := checkPair(pair); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(pair.Name)
	w, err := s.load(path, pair.Name, pair.Password.Bytes())
	if err != nil {
		return err
	}
	defer w.Close()

	return s.save(path, w, newPassword.Bytes())
}

// Rename 修改钱包名, 需要正确的密码
func (s *Store) Rename(ctx context.Context, pair model.WalletNamePasswordPair, newName model.WalletName) error {
	if err := checkPair(pair); err != nil {
		return err
	}
	if newName == "" {
		return ErrInvalidWalletName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	oldPath, newPath := s.path(pair.Name), s.path(newName)
	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("%w: %s", ErrWalletExists, newName)
	}

	w, err := s.load(oldPath, pair.Name, pair.Password.Bytes())
	if err != nil {
		return err
	}
	w.Close()

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("重命名钱包失败: %w", err)
	}
	logger.Info("wallet renamed", zap.String("from", pair.Name.String()), zap.String("to", newName.String()))
	return nil
}

func (s *Store) path(name model.WalletName) string {
	return filepath.Join(s.dir, url.PathEscape(string(name))+fileExt)
}

func (s *Store) load(path string, name model.WalletName, password []byte) (*UnlockedWallet, error) {
	k, err := keystore.LoadFromFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWalletNotFound, name)
		}
		return nil, err
	}

	plain, err := keystore.Decrypt(k, password)
	if err != nil {
		return nil, err
	}
	defer crypto_util.Zero(plain)

	var p payload
	if err := json.Unmarshal(plain, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", keystore.ErrUnsupported, err)
	}

	w := newUnlockedWallet(name)
	for _, entry := range p.Accounts {
		primary, err := decodeKey(entry.PrimaryKey)
		if err != nil {
			w.Close()
			return nil, err
		}
		var remote *btcec.PrivateKey
		if entry.RemoteKey != "" {
			if remote, err = decodeKey(entry.RemoteKey); err != nil {
				w.Close()
				return nil, err
			}
		}
		if err := w.add(s.gen, primary, remote); err != nil {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}

func (s *Store) save(path string, w *UnlockedWallet, password []byte) error {
	p := payload{Accounts: make([]accountEntry, 0, len(w.order))}
	for _, addr := range w.order {
		acc := w.accounts[addr]
		entry := accountEntry{PrimaryKey: encodeKey(acc.PrimaryKey)}
		if acc.RemoteKey != nil {
			entry.RemoteKey = encodeKey(acc.RemoteKey)
		}
		p.Accounts = append(p.Accounts, entry)
	}

	plain, err := json.Marshal(p)
	if err != nil {
		return err
	}
	defer crypto_util.Zero(plain)

	k, err := keystore.Encrypt(plain, password, s.params)
	if err != nil {
		return err
	}
	return k.SaveToFile(path)
}

func checkPair(pair model.WalletNamePasswordPair) error {
	if pair.Name == "" {
		return ErrInvalidWalletName
	}
	if pair.Password == nil {
		return errno.ErrMissingCredential
	}
	return nil
}

func encodeKey(k *btcec.PrivateKey) string {
	raw := k.Serialize()
	defer crypto_util.Zero(raw)
	return hex.EncodeToString(raw)
}

func decodeKey(s string) (*btcec.PrivateKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keystore.ErrUnsupported, err)
	}
	defer crypto_util.Zero(raw)
	return crypto_util.ParsePrivateKey(raw)
}
