package model

type MessageType uint8

const (
	MessageTypePlain  MessageType = 1
	MessageTypeSecure MessageType = 2
)

func (t MessageType) String() string {
	switch t {
	case MessageTypePlain:
		return "plain"
	case MessageTypeSecure:
		return "secure"
	default:
		return "unknown"
	}
}

// Message 已编码的交易附言
// plain: Encoded == Decoded; secure: Encoded 为密文
type Message struct {
	Type    MessageType
	Encoded []byte
	Decoded []byte
}

func (m *Message) IsSecure() bool { return m != nil && m.Type == MessageTypeSecure }
