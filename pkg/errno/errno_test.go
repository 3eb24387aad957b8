package errno

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	custom := ErrWalletUnavailable.WithMessage("wallet w: invalid password")

	assert.True(t, errors.Is(custom, ErrWalletUnavailable))
	assert.False(t, errors.Is(custom, ErrMissingCredential))
}

func TestIsSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: %w", ErrWalletUnavailable, errors.New("file does not exist"))

	assert.True(t, errors.Is(wrapped, ErrWalletUnavailable))
	assert.False(t, errors.Is(wrapped, ErrUnknownSigner))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"nil", nil, 0, "Success"},
		{"value", ErrRecipientPublicKeyUnknown, 30201, "recipient public key is unknown"},
		{"pointer", &ErrUnknownSigner, 30103, "signer address is not part of the wallet"},
		{"wrapped", fmt.Errorf("open: %w", ErrMissingCredential), 30101, "open: wallet password must be provided"},
		{"plain", errors.New("boom"), 10001, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := Decode(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
