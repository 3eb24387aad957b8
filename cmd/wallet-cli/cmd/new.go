package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/bip32"
	"wallet-mapper/pkg/bip39"
)

// newCmd 代表 new 命令
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "创建一个新的钱包",
	Long:  `生成 BIP-39 助记词, 派生主签名密钥和远程收获密钥, 用密码加密后写入钱包目录。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		password, err := readPassword("请输入钱包密码: ")
		if err != nil {
			return err
		}
		if _, set := lookupPasswordEnv(); !set {
			confirm, err := readPassword("请再次输入密码: ")
			if err != nil {
				return err
			}
			if confirm != password {
				return errors.New("两次输入的密码不一致")
			}
		}

		// 1. 生成助记词
		mnemonicService := bip39.NewMnemonicService()
		mnemonic, err := mnemonicService.GenerateMnemonic(256) // 24 words
		if err != nil {
			return fmt.Errorf("生成助记词失败: %w", err)
		}

		// 2. 派生第 0 个账户
		seed, err := mnemonicService.Seed(mnemonic, "")
		if err != nil {
			return err
		}
		deriver, err := bip32.NewDeriver(seed)
		if err != nil {
			return err
		}
		keys, err := deriver.Account(0)
		if err != nil {
			return fmt.Errorf("派生账户失败: %w", err)
		}

		// 3. 加密保存
		store, err := openStore()
		if err != nil {
			return err
		}
		w, err := store.Import(cmd.Context(), model.NewWalletNamePasswordPair(model.WalletName(name), password), []bip32.AccountKeys{*keys})
		if err != nil {
			return err
		}
		defer w.Close()

		addr := w.Addresses()[0]
		acc, err := w.WalletAccount(addr)
		if err != nil {
			return err
		}

		fmt.Println("---------------------------------------------------")
		fmt.Printf("助记词 (Mnemonic): \n%s\n", mnemonic)
		fmt.Println("---------------------------------------------------")
		fmt.Printf("账户地址:     %s\n", addr)
		fmt.Printf("远程收获地址: %s\n", acc.RemoteAddress)
		fmt.Println("---------------------------------------------------")
		fmt.Println("请妥善保管您的助记词！任何拥有助记词的人都可以控制该钱包的所有资产。")
		return nil
	},
}

func init() {
	newCmd.Flags().String("name", "", "钱包名")
	_ = newCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(newCmd)
}
