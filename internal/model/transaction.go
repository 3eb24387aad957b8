package model

import "fmt"

type TransactionKind uint8

const (
	TransactionKindTransfer TransactionKind = iota + 1
	TransactionKindImportanceTransfer
)

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindTransfer:
		return "transfer"
	case TransactionKindImportanceTransfer:
		return "importance_transfer"
	default:
		return "unknown"
	}
}

type ImportanceTransferMode uint8

const (
	ImportanceTransferModeActivate ImportanceTransferMode = iota + 1
	ImportanceTransferModeDeactivate
)

func (m ImportanceTransferMode) String() string {
	switch m {
	case ImportanceTransferModeActivate:
		return "activate"
	case ImportanceTransferModeDeactivate:
		return "deactivate"
	default:
		return "unknown"
	}
}

func ParseImportanceTransferMode(s string) (ImportanceTransferMode, error) {
	switch s {
	case "activate":
		return ImportanceTransferModeActivate, nil
	case "deactivate":
		return ImportanceTransferModeDeactivate, nil
	}
	return 0, fmt.Errorf("unknown importance transfer mode %q", s)
}

// TransactionHeader 各类交易共有的字段
type TransactionHeader struct {
	Signer    Account
	TimeStamp TimeInstant
	Deadline  TimeInstant
	Fee       Amount
}

type TransferPayload struct {
	Recipient Account
	Amount    Amount
	Message   *Message // nil 表示无附言
}

type ImportanceTransferPayload struct {
	Remote Account
	Mode   ImportanceTransferMode
}

// Transaction 按 Kind 区分的交易, 同一时刻只有一个 payload 非空
type Transaction struct {
	Kind TransactionKind
	TransactionHeader

	transfer   *TransferPayload
	importance *ImportanceTransferPayload
}

func NewTransferTransaction(h TransactionHeader, p TransferPayload) *Transaction {
	return &Transaction{Kind: TransactionKindTransfer, TransactionHeader: h, transfer: &p}
}

func NewImportanceTransferTransaction(h TransactionHeader, p ImportanceTransferPayload) *Transaction {
	return &Transaction{Kind: TransactionKindImportanceTransfer, TransactionHeader: h, importance: &p}
}

func (t *Transaction) Transfer() (*TransferPayload, bool) {
	return t.transfer, t.Kind == TransactionKindTransfer && t.transfer != nil
}

func (t *Transaction) ImportanceTransfer() (*ImportanceTransferPayload, bool) {
	return t.importance, t.Kind == TransactionKindImportanceTransfer && t.importance != nil
}
