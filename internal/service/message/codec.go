package message

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/crypto_util"
	"wallet-mapper/pkg/safe_random"
)

const saltSize = 32

var (
	ErrUnknownType       = errors.New("unknown message type")
	ErrMalformedEnvelope = errors.New("malformed secure message")
)

// hkdf info, 区分其他用途的派生密钥
var kdfInfo = []byte("wallet-mapper/secure-message/v1")

// Codec 附言编解码
// 加密格式: salt(32) || AES-256-GCM(nonce || ciphertext), salt 同时作为 AAD
// 密钥: HKDF-SHA256(ECDH(sender, recipient), salt), 双方任一方都能解出
type Codec struct{}

func NewCodec() *Codec { return &Codec{} }

// EncodePlain 明文附言, Encoded 与 Decoded 相同
func (c *Codec) EncodePlain(plain []byte) model.Message {
	cp := append([]byte(nil), plain...)
	return model.Message{Type: model.MessageTypePlain, Encoded: cp, Decoded: cp}
}

func (c *Codec) EncodeSecure(plain []byte, senderPriv *btcec.PrivateKey, recipientPub *btcec.PublicKey) (model.Message, error) {
	salt, err := safe_random.Bytes(saltSize)
	if err != nil {
		return model.Message{}, err
	}
	key, err := crypto_util.DeriveSharedKey(senderPriv, recipientPub, salt, kdfInfo)
	if err != nil {
		return model.Message{}, err
	}
	defer crypto_util.Zero(key)

	sealed, err := crypto_util.EncryptAESGCMWithAAD(key, plain, salt)
	if err != nil {
		return model.Message{}, fmt.Errorf("encrypt message: %w", err)
	}

	encoded := make([]byte, 0, saltSize+len(sealed))
	encoded = append(encoded, salt...)
	encoded = append(encoded, sealed...)
	return model.Message{
		Type:    model.MessageTypeSecure,
		Encoded: encoded,
		Decoded: append([]byte(nil), plain...),
	}, nil
}

// DecodeSecure 用本方私钥和对方公钥解密
func (c *Codec) DecodeSecure(encoded []byte, ownPriv *btcec.PrivateKey, otherPub *btcec.PublicKey) ([]byte, error) {
	if len(encoded) <= saltSize {
		return nil, ErrMalformedEnvelope
	}
	salt, sealed := encoded[:saltSize], encoded[saltSize:]

	key, err := crypto_util.DeriveSharedKey(ownPriv, otherPub, salt, kdfInfo)
	if err != nil {
		return nil, err
	}
	defer crypto_util.Zero(key)

	plain, err := crypto_util.DecryptAESGCMWithAAD(key, sealed, salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	return plain, nil
}

// Decode 解出任意类型附言的明文
func (c *Codec) Decode(msg model.Message, ownPriv *btcec.PrivateKey, otherPub *btcec.PublicKey) ([]byte, error) {
	switch msg.Type {
	case model.MessageTypePlain:
		return msg.Encoded, nil
	case model.MessageTypeSecure:
		return c.DecodeSecure(msg.Encoded, ownPriv, otherPub)
	}
	return nil, fmt.Errorf("%w: type %s", ErrUnknownType, msg.Type)
}
