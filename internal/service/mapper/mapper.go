package mapper

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"go.uber.org/zap"

	"wallet-mapper/internal/model"
	"wallet-mapper/internal/service"
	"wallet-mapper/pkg/crypto_util"
	"wallet-mapper/pkg/errno"
	"wallet-mapper/pkg/logger"
	"wallet-mapper/pkg/monitor"
)

const (
	DefaultTransferDeadlineHours   = 5
	DefaultImportanceDeadlineHours = 7
)

// TransactionMapper 将转账请求映射为领域交易对象
// 每次映射只借用一次钱包: Open -> 取私钥 -> Close, 不缓存已解锁的钱包
type TransactionMapper struct {
	wallets  service.WalletServices
	accounts service.AccountLookup
	clock    service.TimeProvider
	codec    service.MessageCodec
	fees     service.FeeSchedule

	transferDeadlineHours   int
	importanceDeadlineHours int
}

type Option func(*TransactionMapper)

// WithDefaultDeadlines 请求未给出有效期 (<= 0) 时使用的默认小时数
func WithDefaultDeadlines(transferHours, importanceHours int) Option {
	return func(m *TransactionMapper) {
		if transferHours > 0 {
			m.transferDeadlineHours = transferHours
		}
		if importanceHours > 0 {
			m.importanceDeadlineHours = importanceHours
		}
	}
}

func New(
	wallets service.WalletServices,
	accounts service.AccountLookup,
	clock service.TimeProvider,
	codec service.MessageCodec,
	fees service.FeeSchedule,
	opts ...Option,
) *TransactionMapper {
	m := &TransactionMapper{
		wallets:                 wallets,
		accounts:                accounts,
		clock:                   clock,
		codec:                   codec,
		fees:                    fees,
		transferDeadlineHours:   DefaultTransferDeadlineHours,
		importanceDeadlineHours: DefaultImportanceDeadlineHours,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ToModel 映射转账请求
func (m *TransactionMapper) ToModel(ctx context.Context, req model.TransferSendRequest) (tx *model.Transaction, err error) {
	defer func() { observe("transfer", err) }()

	wallet, err := m.openWallet(ctx, req.WalletNamePasswordPair())
	if err != nil {
		return nil, err
	}
	defer wallet.Close()

	priv, err := wallet.AccountPrivateKey(req.SignerAddress)
	if err != nil {
		return nil, unknownSigner(req.SignerAddress, err)
	}
	signerKey, err := copyPrivateKey(priv)
	if err != nil {
		return nil, unknownSigner(req.SignerAddress, err)
	}
	signer := model.Account{Address: req.SignerAddress, KeyPair: model.NewKeyPair(signerKey)}

	recipient := m.accounts.FindByAddress(ctx, req.RecipientAddress)

	timeStamp := m.clock.CurrentTime()
	deadline := timeStamp.AddHours(hoursOrDefault(req.DeadlineHours, m.transferDeadlineHours))

	msg, err := m.encodeMessage(req.Message, req.ShouldEncryptMessage, signerKey, recipient)
	if err != nil {
		return nil, err
	}

	logger.Debug("mapped transfer",
		zap.String("signer", req.SignerAddress.String()),
		zap.String("recipient", req.RecipientAddress.String()),
		zap.Int64("timestamp", int64(timeStamp)),
		zap.Bool("has_message", msg != nil),
	)

	return model.NewTransferTransaction(
		model.TransactionHeader{
			Signer:    signer,
			TimeStamp: timeStamp,
			Deadline:  deadline,
			Fee:       req.Fee,
		},
		model.TransferPayload{
			Recipient: recipient,
			Amount:    req.Amount,
			Message:   msg,
		},
	), nil
}

// ToImportanceModel 映射委托收获请求, mode 由调用方决定, 不读取 req.Mode
func (m *TransactionMapper) ToImportanceModel(ctx context.Context, req model.TransferImportanceRequest, mode model.ImportanceTransferMode) (tx *model.Transaction, err error) {
	defer func() { observe("importance", err) }()

	wallet, err := m.openWallet(ctx, req.WalletNamePasswordPair())
	if err != nil {
		return nil, err
	}
	defer wallet.Close()

	account, err := wallet.WalletAccount(req.SignerAddress)
	if err != nil {
		return nil, unknownSigner(req.SignerAddress, err)
	}
	if account == nil || account.PrimaryKey == nil {
		return nil, unknownSigner(req.SignerAddress, errors.New("empty wallet account"))
	}
	if account.RemoteKey == nil {
		return nil, errno.ErrUnknownSigner.WithMessage(
			fmt.Sprintf("wallet account %s has no remote harvesting key", req.SignerAddress))
	}

	signerKey, err := copyPrivateKey(account.PrimaryKey)
	if err != nil {
		return nil, unknownSigner(req.SignerAddress, err)
	}
	remoteKey, err := copyPrivateKey(account.RemoteKey)
	if err != nil {
		return nil, unknownSigner(req.SignerAddress, err)
	}

	timeStamp := m.clock.CurrentTime()
	deadline := timeStamp.AddHours(hoursOrDefault(req.DeadlineHours, m.importanceDeadlineHours))

	logger.Debug("mapped importance transfer",
		zap.String("signer", req.SignerAddress.String()),
		zap.String("remote", account.RemoteAddress.String()),
		zap.Stringer("mode", mode),
	)

	return model.NewImportanceTransferTransaction(
		model.TransactionHeader{
			Signer:    model.Account{Address: req.SignerAddress, KeyPair: model.NewKeyPair(signerKey)},
			TimeStamp: timeStamp,
			Deadline:  deadline,
		},
		model.ImportanceTransferPayload{
			Remote: model.Account{Address: account.RemoteAddress, KeyPair: model.NewKeyPair(remoteKey)},
			Mode:   mode,
		},
	), nil
}

// ToViewModel 估算手续费及是否支持加密附言, 不访问钱包, 没有失败路径
// 有附言时固定加一个附言单位, 与是否加密无关
func (m *TransactionMapper) ToViewModel(ctx context.Context, req model.PartialTransferInformationRequest) model.PartialTransferInformationViewModel {
	var amount model.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}

	fee := m.fees.BaseFee(amount)
	if hasMessage(req.Message) {
		fee = fee.Add(m.fees.MessageFeeUnit())
	}

	supported := false
	if req.RecipientAddress != nil {
		supported = m.accounts.FindByAddress(ctx, *req.RecipientAddress).HasPublicKey()
	}

	observe("view", nil)
	return model.PartialTransferInformationViewModel{
		Fee:                   fee,
		IsEncryptionSupported: supported,
	}
}

// openWallet 校验密码后解锁钱包, 密码缺失时不触碰钱包
func (m *TransactionMapper) openWallet(ctx context.Context, pair model.WalletNamePasswordPair) (service.Wallet, error) {
	if pair.Password == nil {
		return nil, errno.ErrMissingCredential
	}

	wallet, err := m.wallets.Open(ctx, pair)
	if err != nil {
		monitor.WalletUnlockFailuresTotal.WithLabelValues("open_failed").Inc()
		logger.Warn("wallet unlock failed", zap.String("wallet", pair.Name.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", errno.ErrWalletUnavailable, err)
	}
	if wallet == nil {
		monitor.WalletUnlockFailuresTotal.WithLabelValues("no_wallet").Inc()
		logger.Warn("wallet unlock returned no wallet", zap.String("wallet", pair.Name.String()))
		return nil, errno.ErrWalletUnavailable
	}
	return wallet, nil
}

func (m *TransactionMapper) encodeMessage(text *string, encrypt bool, sender *btcec.PrivateKey, recipient model.Account) (*model.Message, error) {
	if !hasMessage(text) {
		return nil, nil
	}

	plain := []byte(*text)
	if !encrypt {
		msg := m.codec.EncodePlain(plain)
		return &msg, nil
	}

	if !recipient.HasPublicKey() {
		return nil, errno.ErrRecipientPublicKeyUnknown.WithMessage(
			fmt.Sprintf("recipient %s public key is unknown", recipient.Address))
	}
	msg, err := m.codec.EncodeSecure(plain, sender, recipient.KeyPair.PublicKey())
	if err != nil {
		return nil, fmt.Errorf("encode secure message: %w", err)
	}
	return &msg, nil
}

func hasMessage(text *string) bool {
	return text != nil && *text != ""
}

func hoursOrDefault(hours, def int) int {
	if hours > 0 {
		return hours
	}
	return def
}

// copyPrivateKey 钱包 Close 时会清零自己的私钥, 返回的交易持有独立副本
func copyPrivateKey(priv *btcec.PrivateKey) (*btcec.PrivateKey, error) {
	if priv == nil {
		return nil, crypto_util.ErrInvalidPrivateKey
	}
	raw := priv.Serialize()
	defer crypto_util.Zero(raw)
	return crypto_util.ParsePrivateKey(raw)
}

func unknownSigner(addr model.Address, cause error) error {
	if errors.Is(cause, errno.ErrUnknownSigner) {
		return cause
	}
	return fmt.Errorf("%w: %s: %w", errno.ErrUnknownSigner, addr, cause)
}

func observe(kind string, err error) {
	result := "ok"
	if err != nil {
		code, _ := errno.Decode(err)
		result = fmt.Sprint(code)
	}
	monitor.MappedTransactionsTotal.WithLabelValues(kind, result).Inc()
}
