package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallet-mapper/internal/model"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "列出钱包内的账户",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		add, _ := cmd.Flags().GetBool("add")

		password, err := readPassword("请输入钱包密码: ")
		if err != nil {
			return err
		}
		pair := model.NewWalletNamePasswordPair(model.WalletName(name), password)

		store, err := openStore()
		if err != nil {
			return err
		}
		if add {
			addr, err := store.AddAccount(cmd.Context(), pair)
			if err != nil {
				return err
			}
			fmt.Printf("已添加账户: %s\n", addr)
		}

		w, err := store.Unlock(cmd.Context(), pair)
		if err != nil {
			return err
		}
		defer w.Close()

		for i, addr := range w.Addresses() {
			acc, err := w.WalletAccount(addr)
			if err != nil {
				return err
			}
			fmt.Printf("[%d] %s  (remote: %s)\n", i, addr, acc.RemoteAddress)
		}
		return nil
	},
}

func init() {
	accountsCmd.Flags().String("name", "", "钱包名")
	accountsCmd.Flags().Bool("add", false, "先添加一个随机账户")
	_ = accountsCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(accountsCmd)
}
