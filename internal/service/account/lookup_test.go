package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/cache"
)

type failingRepo struct{ calls int }

func (r *failingRepo) Find(ctx context.Context, addr model.Address) (*model.KnownAccount, error) {
	r.calls++
	return nil, errors.New("connection refused")
}

func (r *failingRepo) Save(ctx context.Context, acc *model.KnownAccount) error {
	return errors.New("connection refused")
}

// countingRepo 记录仓库被访问的次数, 用来验证缓存
type countingRepo struct {
	*MemoryRepository
	finds int
}

func (r *countingRepo) Find(ctx context.Context, addr model.Address) (*model.KnownAccount, error) {
	r.finds++
	return r.MemoryRepository.Find(ctx, addr)
}

func newLookup(repo Repository) *Lookup {
	return NewLookup(repo, cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
}

func TestFindByAddress(t *testing.T) {
	ctx := context.Background()
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	repo := &countingRepo{MemoryRepository: NewMemoryRepository()}
	l := newLookup(repo)

	// 未知地址降级为 address-only
	acc := l.FindByAddress(ctx, "A")
	assert.Equal(t, model.Address("A"), acc.Address)
	assert.False(t, acc.HasPublicKey())

	require.NoError(t, l.Remember(ctx, model.Account{Address: "A", KeyPair: model.NewPublicKeyPair(priv.PubKey())}))

	acc = l.FindByAddress(ctx, "A")
	require.True(t, acc.HasPublicKey())
	assert.True(t, priv.PubKey().IsEqual(acc.KeyPair.PublicKey()))
	assert.False(t, acc.KeyPair.HasPrivateKey())

	finds := repo.finds
	acc = l.FindByAddress(ctx, "A")
	assert.True(t, acc.HasPublicKey())
	assert.Equal(t, finds, repo.finds, "第二次查询应命中缓存")
}

func TestFindByAddressDegradesOnError(t *testing.T) {
	repo := &failingRepo{}
	acc := newLookup(repo).FindByAddress(context.Background(), "A")
	assert.False(t, acc.HasPublicKey())
	assert.Equal(t, 1, repo.calls)
}

func TestFindByAddressIgnoresCorruptKey(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Save(ctx, &model.KnownAccount{Address: "A", PublicKey: "zz"}))
	require.NoError(t, repo.Save(ctx, &model.KnownAccount{Address: "B", PublicKey: "02ff"}))

	l := newLookup(repo)
	assert.False(t, l.FindByAddress(ctx, "A").HasPublicKey())
	assert.False(t, l.FindByAddress(ctx, "B").HasPublicKey())
}

func TestRememberRequiresPublicKey(t *testing.T) {
	l := newLookup(NewMemoryRepository())
	err := l.Remember(context.Background(), model.NewAddressOnlyAccount("A"))
	assert.ErrorIs(t, err, ErrNoPublicKey)
}
