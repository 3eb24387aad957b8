package cmd

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wallet-mapper/internal/model"
	"wallet-mapper/internal/service/wallet"
	"wallet-mapper/pkg/config"
	"wallet-mapper/pkg/keystore"
)

// passwordEnv 非交互场景 (脚本/CI) 可以通过环境变量提供密码
const passwordEnv = "WALLET_PASSWORD"

var (
	walletDir string
	network   string
	scryptN   int
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "wallet-cli",
	Short: "钱包命令行工具",
	Long: `离线管理加密钱包文件, 并把转账请求映射为未签名的交易。
钱包文件使用 scrypt + AES-256-GCM 加密, 账户由 BIP-39 助记词派生。`,
	SilenceUsage: true,
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&walletDir, "dir", "./wallets", "钱包文件目录")
	rootCmd.PersistentFlags().StringVar(&network, "network", "mainnet", "网络: mainnet 或 testnet")
	rootCmd.PersistentFlags().IntVar(&scryptN, "scrypt-n", keystore.DefaultParams.N, "scrypt N 参数")
}

func openStore() (*wallet.Store, error) {
	return wallet.NewStoreFromConfig(config.WalletConfig{
		Dir:     walletDir,
		Network: network,
		ScryptN: scryptN,
		ScryptR: keystore.DefaultParams.R,
		ScryptP: keystore.DefaultParams.P,
	})
}

// readPassword 从终端读取密码, 不回显
func readPassword(prompt string) (model.WalletPassword, error) {
	if p, ok := lookupPasswordEnv(); ok {
		return model.WalletPassword(p), nil
	}
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("读取密码失败: %w", err)
	}
	return model.WalletPassword(b), nil
}

func lookupPasswordEnv() (string, bool) {
	return os.LookupEnv(passwordEnv)
}
