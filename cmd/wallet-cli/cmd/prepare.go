package cmd

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wallet-mapper/internal/handler/response"
	"wallet-mapper/internal/model"
	"wallet-mapper/internal/service/account"
	"wallet-mapper/internal/service/fee"
	"wallet-mapper/internal/service/mapper"
	"wallet-mapper/internal/service/message"
	"wallet-mapper/internal/service/timeprovider"
	"wallet-mapper/pkg/cache"
	"wallet-mapper/pkg/crypto_util"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "离线构造转账交易 (不签名, 不广播)",
	Long:  `解锁钱包, 把转账参数映射为交易并以 JSON 输出。加密附言需要通过 --recipient-key 提供接收方公钥。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		name, _ := flags.GetString("name")
		signer, _ := flags.GetString("signer")
		recipient, _ := flags.GetString("recipient")
		recipientKey, _ := flags.GetString("recipient-key")
		amountStr, _ := flags.GetString("amount")
		feeStr, _ := flags.GetString("fee")
		encrypt, _ := flags.GetBool("encrypt")
		deadline, _ := flags.GetInt("deadline")

		amount, err := model.ParseAmount(amountStr)
		if err != nil {
			return err
		}
		txFee, err := model.ParseAmount(feeStr)
		if err != nil {
			return err
		}

		lookup := account.NewLookup(account.NewMemoryRepository(), cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
		if recipientKey != "" {
			if err := rememberRecipient(cmd.Context(), lookup, recipient, recipientKey); err != nil {
				return err
			}
		}

		password, err := readPassword("请输入钱包密码: ")
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		req := model.TransferSendRequest{
			WalletName:           model.WalletName(name),
			SignerAddress:        model.Address(signer),
			RecipientAddress:     model.Address(recipient),
			Amount:               amount,
			ShouldEncryptMessage: encrypt,
			DeadlineHours:        deadline,
			Password:             &password,
			Fee:                  txFee,
		}
		if flags.Changed("message") {
			msg, _ := flags.GetString("message")
			req.Message = &msg
		}

		m := mapper.New(store, lookup, timeprovider.NewSystemClock(), message.NewCodec(), fee.MustDefaultSchedule())
		tx, err := m.ToModel(cmd.Context(), req)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(response.NewTransactionResponse(tx), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func rememberRecipient(ctx context.Context, lookup *account.Lookup, addr, keyHex string) error {
	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		return fmt.Errorf("接收方公钥格式错误: %w", err)
	}
	pub, err := crypto_util.ParsePublicKey(raw)
	if err != nil {
		return err
	}
	return lookup.Remember(ctx, model.Account{Address: model.Address(addr), KeyPair: model.NewPublicKeyPair(pub)})
}

func init() {
	f := prepareCmd.Flags()
	f.String("name", "", "钱包名")
	f.String("signer", "", "签名账户地址")
	f.String("recipient", "", "接收方地址")
	f.String("recipient-key", "", "接收方压缩公钥 (hex), 加密附言时需要")
	f.String("amount", "", "转账金额 (整币)")
	f.String("fee", "", "手续费 (整币)")
	f.String("message", "", "附言")
	f.Bool("encrypt", false, "加密附言")
	f.Int("deadline", mapper.DefaultTransferDeadlineHours, "有效期 (小时)")
	for _, required := range []string{"name", "signer", "recipient", "amount", "fee"} {
		_ = prepareCmd.MarkFlagRequired(required)
	}
	rootCmd.AddCommand(prepareCmd)
}
