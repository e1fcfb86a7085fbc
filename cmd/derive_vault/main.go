// One-off: derive the vault address and bump for an owner under a program id,
// the same derivation the program performs on-chain.
// Usage: go run ./cmd/derive_vault <owner-address> <program-id>
package main

import (
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"

	"github.com/AlexZinkM/sol-vault/program"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: derive_vault <owner-address> <program-id>")
		os.Exit(1)
	}

	owner, err := solana.PublicKeyFromBase58(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid owner address:", err)
		os.Exit(1)
	}

	programID, err := solana.PublicKeyFromBase58(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid program id:", err)
		os.Exit(1)
	}

	address, bump, err := program.DeriveVaultAddress(owner, programID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("vault: %s\nbump:  %d\n", address, bump)
}
