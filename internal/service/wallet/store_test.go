package wallet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/address"
	"wallet-mapper/pkg/bip32"
	"wallet-mapper/pkg/bip39"
	"wallet-mapper/pkg/errno"
	"wallet-mapper/pkg/keystore"
)

// 测试使用低成本 scrypt 参数
var testParams = keystore.Params{N: 1024, R: 8, P: 1}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), testParams, address.NewGenerator(address.TestNetVersion))
	require.NoError(t, err)
	return s
}

func TestCreateAndOpen(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	pair := model.NewWalletNamePasswordPair("w", "p")

	created, err := s.Create(ctx, pair)
	require.NoError(t, err)
	addrs := created.Addresses()
	require.Len(t, addrs, 1)
	created.Close()

	info, err := os.Stat(s.path("w"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	opened, err := s.Open(ctx, pair)
	require.NoError(t, err)
	defer opened.Close()

	acc, err := opened.WalletAccount(addrs[0])
	require.NoError(t, err)
	assert.NotNil(t, acc.PrimaryKey)
	assert.NotNil(t, acc.RemoteKey)
	assert.NotEqual(t, acc.Address, acc.RemoteAddress, "远程收获账户与主账户不同")
	assert.NoError(t, address.NewGenerator(address.TestNetVersion).Validate(acc.Address.String()))

	priv, err := opened.AccountPrivateKey(addrs[0])
	require.NoError(t, err)
	assert.Same(t, acc.PrimaryKey, priv)
}

func TestOpenFailures(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	w, err := s.Create(ctx, model.NewWalletNamePasswordPair("w", "p"))
	require.NoError(t, err)
	w.Close()

	_, err = s.Open(ctx, model.NewWalletNamePasswordPair("w", "wrong"))
	assert.ErrorIs(t, err, keystore.ErrInvalidPassword)

	_, err = s.Open(ctx, model.NewWalletNamePasswordPair("missing", "p"))
	assert.ErrorIs(t, err, ErrWalletNotFound)

	_, err = s.Open(ctx, model.WalletNamePasswordPair{Name: "w"})
	assert.ErrorIs(t, err, errno.ErrMissingCredential)

	_, err = s.Create(ctx, model.NewWalletNamePasswordPair("w", "other"))
	assert.ErrorIs(t, err, ErrWalletExists)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Open(cancelled, model.NewWalletNamePasswordPair("w", "p"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnknownSigner(t *testing.T) {
	s := newTestStore(t)
	w, err := s.Create(context.Background(), model.NewWalletNamePasswordPair("w", "p"))
	require.NoError(t, err)
	defer w.Close()

	_, err = w.AccountPrivateKey("NOPE")
	assert.ErrorIs(t, err, errno.ErrUnknownSigner)
}

func TestCloseZeroesKeys(t *testing.T) {
	s := newTestStore(t)
	w, err := s.Create(context.Background(), model.NewWalletNamePasswordPair("w", "p"))
	require.NoError(t, err)

	addr := w.Addresses()[0]
	acc, err := w.WalletAccount(addr)
	require.NoError(t, err)

	w.Close()
	assert.True(t, acc.PrimaryKey.Key.IsZero())
	assert.True(t, acc.RemoteKey.Key.IsZero())
	_, err = w.AccountPrivateKey(addr)
	assert.ErrorIs(t, err, errno.ErrUnknownSigner)
}

func TestAddAccount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	pair := model.NewWalletNamePasswordPair("w", "p")
	w, err := s.Create(ctx, pair)
	require.NoError(t, err)
	first := w.Addresses()[0]
	w.Close()

	added, err := s.AddAccount(ctx, pair)
	require.NoError(t, err)

	w, err = s.Unlock(ctx, pair)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []model.Address{first, added}, w.Addresses())
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	w, err := s.Create(ctx, model.NewWalletNamePasswordPair("w", "old"))
	require.NoError(t, err)
	w.Close()

	require.NoError(t, s.ChangePassword(ctx, model.NewWalletNamePasswordPair("w", "old"), "new"))

	_, err = s.Open(ctx, model.NewWalletNamePasswordPair("w", "old"))
	assert.ErrorIs(t, err, keystore.ErrInvalidPassword)

	opened, err := s.Open(ctx, model.NewWalletNamePasswordPair("w", "new"))
	require.NoError(t, err)
	opened.Close()

	err = s.ChangePassword(ctx, model.NewWalletNamePasswordPair("w", "old"), "x")
	assert.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	for _, name := range []model.WalletName{"a", "b"} {
		w, err := s.Create(ctx, model.NewWalletNamePasswordPair(name, "p"))
		require.NoError(t, err)
		w.Close()
	}

	err := s.Rename(ctx, model.NewWalletNamePasswordPair("a", "p"), "b")
	assert.ErrorIs(t, err, ErrWalletExists)

	err = s.Rename(ctx, model.NewWalletNamePasswordPair("a", "wrong"), "c")
	assert.ErrorIs(t, err, keystore.ErrInvalidPassword)

	require.NoError(t, s.Rename(ctx, model.NewWalletNamePasswordPair("a", "p"), "c"))
	_, err = s.Open(ctx, model.NewWalletNamePasswordPair("a", "p"))
	assert.ErrorIs(t, err, ErrWalletNotFound)

	w, err := s.Unlock(ctx, model.NewWalletNamePasswordPair("c", "p"))
	require.NoError(t, err)
	assert.Equal(t, model.WalletName("c"), w.Name())
	w.Close()
}

func TestWalletNameIsEscaped(t *testing.T) {
	s := newTestStore(t)
	w, err := s.Create(context.Background(), model.NewWalletNamePasswordPair("../evil/name", "p"))
	require.NoError(t, err)
	w.Close()

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, s.dir, filepath.Dir(s.path("../evil/name")))
}

func TestImportFromMnemonic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	mnemonic, err := bip39.NewMnemonicService().GenerateMnemonic(128)
	require.NoError(t, err)
	seed, err := bip39.NewMnemonicService().Seed(mnemonic, "")
	require.NoError(t, err)
	deriver, err := bip32.NewDeriver(seed)
	require.NoError(t, err)
	keys, err := deriver.Account(0)
	require.NoError(t, err)
	expected := keys.Primary.PubKey()

	w, err := s.Import(ctx, model.NewWalletNamePasswordPair("hd", "p"), []bip32.AccountKeys{*keys})
	require.NoError(t, err)
	addr := w.Addresses()[0]
	w.Close()

	opened, err := s.Unlock(ctx, model.NewWalletNamePasswordPair("hd", "p"))
	require.NoError(t, err)
	defer opened.Close()
	priv, err := opened.AccountPrivateKey(addr)
	require.NoError(t, err)
	assert.True(t, expected.IsEqual(priv.PubKey()))
}
