package event

import (
	"time"

	"wallet-mapper/internal/model"
)

// TransactionPreparedEvent 交易映射成功后的审计事件, 不含任何密钥
// Topic: wallet_events_transaction_prepared
type TransactionPreparedEvent struct {
	EventID   string    `json:"event_id"`
	Kind      string    `json:"kind"` // transfer, importance_transfer
	Signer    string    `json:"signer"`
	Recipient string    `json:"recipient,omitempty"`
	Remote    string    `json:"remote,omitempty"`
	Mode      string    `json:"mode,omitempty"`
	Amount    string    `json:"amount,omitempty"` // Decimal string
	Fee       string    `json:"fee"`
	Message   string    `json:"message_type,omitempty"`
	TimeStamp int64     `json:"timestamp"`
	Deadline  int64     `json:"deadline"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTransactionPreparedEvent(id string, tx *model.Transaction) TransactionPreparedEvent {
	e := TransactionPreparedEvent{
		EventID:   id,
		Kind:      tx.Kind.String(),
		Signer:    tx.Signer.Address.String(),
		Fee:       tx.Fee.String(),
		TimeStamp: int64(tx.TimeStamp),
		Deadline:  int64(tx.Deadline),
		CreatedAt: time.Now().UTC(),
	}
	if p, ok := tx.Transfer(); ok {
		e.Recipient = p.Recipient.Address.String()
		e.Amount = p.Amount.String()
		if p.Message != nil {
			e.Message = p.Message.Type.String()
		}
	}
	if p, ok := tx.ImportanceTransfer(); ok {
		e.Remote = p.Remote.Address.String()
		e.Mode = p.Mode.String()
	}
	return e
}
