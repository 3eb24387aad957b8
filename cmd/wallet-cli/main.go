package main

import "wallet-mapper/cmd/wallet-cli/cmd"

func main() {
	cmd.Execute()
}
