package response

import (
	"encoding/hex"

	"wallet-mapper/internal/model"
)

type MessageResponse struct {
	Type    string `json:"type"`    // plain, secure
	Payload string `json:"payload"` // 编码后的 hex
}

// TransactionResponse 映射出的交易, 只包含公钥
type TransactionResponse struct {
	Kind               string           `json:"kind"`
	Signer             string           `json:"signer"`
	SignerPublicKey    string           `json:"signer_public_key"`
	Recipient          string           `json:"recipient,omitempty"`
	RecipientPublicKey string           `json:"recipient_public_key,omitempty"`
	Amount             string           `json:"amount,omitempty"`
	Message            *MessageResponse `json:"message,omitempty"`
	Remote             string           `json:"remote,omitempty"`
	RemotePublicKey    string           `json:"remote_public_key,omitempty"`
	Mode               string           `json:"mode,omitempty"`
	Fee                string           `json:"fee"`
	TimeStamp          int64            `json:"timestamp"`
	Deadline           int64            `json:"deadline"`
}

func NewTransactionResponse(tx *model.Transaction) TransactionResponse {
	resp := TransactionResponse{
		Kind:            tx.Kind.String(),
		Signer:          tx.Signer.Address.String(),
		SignerPublicKey: tx.Signer.KeyPair.PublicKeyHex(),
		Fee:             tx.Fee.String(),
		TimeStamp:       int64(tx.TimeStamp),
		Deadline:        int64(tx.Deadline),
	}
	if p, ok := tx.Transfer(); ok {
		resp.Recipient = p.Recipient.Address.String()
		resp.RecipientPublicKey = p.Recipient.KeyPair.PublicKeyHex()
		resp.Amount = p.Amount.String()
		if p.Message != nil {
			resp.Message = &MessageResponse{
				Type:    p.Message.Type.String(),
				Payload: hex.EncodeToString(p.Message.Encoded),
			}
		}
	}
	if p, ok := tx.ImportanceTransfer(); ok {
		resp.Remote = p.Remote.Address.String()
		resp.RemotePublicKey = p.Remote.KeyPair.PublicKeyHex()
		resp.Mode = p.Mode.String()
	}
	return resp
}

type ViewModelResponse struct {
	Fee                   string `json:"fee"`
	IsEncryptionSupported bool   `json:"is_encryption_supported"`
}

func NewViewModelResponse(vm model.PartialTransferInformationViewModel) ViewModelResponse {
	return ViewModelResponse{Fee: vm.Fee.String(), IsEncryptionSupported: vm.IsEncryptionSupported}
}
