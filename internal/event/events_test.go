package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-mapper/internal/model"
)

func TestNewTransactionPreparedEvent(t *testing.T) {
	tx := model.NewTransferTransaction(
		model.TransactionHeader{Signer: model.NewAddressOnlyAccount("S"), TimeStamp: 124, Deadline: 124 + 5*3600, Fee: model.FromNem(2)},
		model.TransferPayload{
			Recipient: model.NewAddressOnlyAccount("R"),
			Amount:    model.FromNem(7),
			Message:   &model.Message{Type: model.MessageTypeSecure},
		},
	)
	e := NewTransactionPreparedEvent("id-1", tx)
	assert.Equal(t, "transfer", e.Kind)
	assert.Equal(t, "R", e.Recipient)
	assert.Equal(t, "7", e.Amount)
	assert.Equal(t, "2", e.Fee)
	assert.Equal(t, "secure", e.Message)
	assert.Empty(t, e.Remote)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "key")

	itx := model.NewImportanceTransferTransaction(
		model.TransactionHeader{Signer: model.NewAddressOnlyAccount("S")},
		model.ImportanceTransferPayload{Remote: model.NewAddressOnlyAccount("X"), Mode: model.ImportanceTransferModeActivate},
	)
	e = NewTransactionPreparedEvent("id-2", itx)
	assert.Equal(t, "importance_transfer", e.Kind)
	assert.Equal(t, "X", e.Remote)
	assert.Equal(t, "activate", e.Mode)
	assert.Empty(t, e.Amount)
}
