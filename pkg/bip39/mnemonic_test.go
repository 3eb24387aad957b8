package bip39

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMnemonic(t *testing.T) {
	s := NewMnemonicService()

	m12, err := s.GenerateMnemonic(128)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(m12), 12)

	m24, err := s.GenerateMnemonic(256)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(m24), 24)

	_, err = s.GenerateMnemonic(100)
	assert.Error(t, err, "非法熵长度应该报错")
}

func TestSeed(t *testing.T) {
	s := NewMnemonicService()
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	seed, err := s.Seed(mnemonic, "")
	require.NoError(t, err)
	assert.Len(t, seed, 64)

	withPass, err := s.Seed(mnemonic, "TREZOR")
	require.NoError(t, err)
	assert.NotEqual(t, seed, withPass)

	_, err = s.Seed("abandon abandon", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}
