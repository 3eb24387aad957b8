package account

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"wallet-mapper/internal/model"
	"wallet-mapper/internal/service"
	"wallet-mapper/pkg/cache"
	"wallet-mapper/pkg/crypto_util"
	"wallet-mapper/pkg/logger"
)

const cacheKeyPrefix = "account:"

var ErrNoPublicKey = errors.New("账户没有公钥")

// Lookup 按地址查账户: 缓存 -> 仓库 -> address-only
type Lookup struct {
	repo  Repository
	cache cache.Cache
	ttl   time.Duration
}

var _ service.AccountLookup = (*Lookup)(nil)

func NewLookup(repo Repository, c cache.Cache, ttl time.Duration) *Lookup {
	return &Lookup{repo: repo, cache: c, ttl: ttl}
}

// FindByAddress 查不到或数据异常时降级为 address-only, 不返回错误
func (l *Lookup) FindByAddress(ctx context.Context, addr model.Address) model.Account {
	var known model.KnownAccount
	if err := l.cache.Get(ctx, cacheKeyPrefix+addr.String(), &known); err == nil {
		return toAccount(addr, &known)
	}

	found, err := l.repo.Find(ctx, addr)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			logger.Warn("account lookup failed", zap.String("address", addr.String()), zap.Error(err))
		}
		return model.NewAddressOnlyAccount(addr)
	}

	if err := l.cache.Set(ctx, cacheKeyPrefix+addr.String(), found, l.ttl); err != nil {
		logger.Warn("account cache set failed", zap.String("address", addr.String()), zap.Error(err))
	}
	return toAccount(addr, found)
}

// Remember 记录观测到的账户公钥
func (l *Lookup) Remember(ctx context.Context, acc model.Account) error {
	if !acc.HasPublicKey() {
		return fmt.Errorf("%w: %s", ErrNoPublicKey, acc.Address)
	}
	known := &model.KnownAccount{
		Address:   acc.Address.String(),
		PublicKey: acc.KeyPair.PublicKeyHex(),
		UpdatedAt: time.Now(),
	}
	if err := l.repo.Save(ctx, known); err != nil {
		return err
	}
	_ = l.cache.Delete(ctx, cacheKeyPrefix+acc.Address.String())
	return nil
}

func toAccount(addr model.Address, known *model.KnownAccount) model.Account {
	raw, err := hex.DecodeString(known.PublicKey)
	if err != nil {
		logger.Warn("invalid stored public key", zap.String("address", addr.String()), zap.Error(err))
		return model.NewAddressOnlyAccount(addr)
	}
	pub, err := crypto_util.ParsePublicKey(raw)
	if err != nil {
		logger.Warn("invalid stored public key", zap.String("address", addr.String()), zap.Error(err))
		return model.NewAddressOnlyAccount(addr)
	}
	return model.Account{Address: addr, KeyPair: model.NewPublicKeyPair(pub)}
}
