package program

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// vaultSeed is the fixed seed tag prefixing every vault derivation.
const vaultSeed = "vault"

// DeriveVaultAddress computes the deterministic, off-curve address of the
// vault belonging to owner under this program. The derivation is a pure
// function of {tag, owner, programID}: the same inputs always yield the same
// address and bump, and no keypair can sign for it. Both handlers and any
// off-chain verifier use this same function.
func DeriveVaultAddress(owner, programID solana.PublicKey) (solana.PublicKey, uint8, error) {
	address, bump, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(vaultSeed),
			owner.Bytes(),
		},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive vault address: %w", err)
	}
	return address, bump, nil
}
