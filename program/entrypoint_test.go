package program_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/sol-vault/program"
	"github.com/AlexZinkM/sol-vault/runtime"
)

func newProcessor() *program.Processor {
	return program.NewProcessor(runtime.DefaultRent(), runtime.NewSystem())
}

func newOwner(lamports uint64) *runtime.Account {
	return &runtime.Account{
		Key:        solana.NewWallet().PublicKey(),
		Lamports:   lamports,
		Owner:      solana.SystemProgramID,
		IsSigner:   true,
		IsWritable: true,
	}
}

// newVaultFor returns the (still uninitialized) vault account at the
// owner's derived address.
func newVaultFor(t *testing.T, owner *runtime.Account, programID solana.PublicKey) *runtime.Account {
	t.Helper()
	address, _, err := program.DeriveVaultAddress(owner.Key, programID)
	require.NoError(t, err)
	return &runtime.Account{
		Key:        address,
		IsWritable: true,
	}
}

func programAccount(programID solana.PublicKey) *runtime.Account {
	return &runtime.Account{Key: programID}
}

func systemAccount() *runtime.Account {
	return &runtime.Account{Key: solana.SystemProgramID}
}

func depositAccounts(t *testing.T, owner *runtime.Account, programID solana.PublicKey) []*runtime.Account {
	t.Helper()
	return []*runtime.Account{owner, newVaultFor(t, owner, programID), programAccount(programID), systemAccount()}
}

func withdrawAccounts(t *testing.T, owner *runtime.Account, programID solana.PublicKey) []*runtime.Account {
	t.Helper()
	return []*runtime.Account{owner, newVaultFor(t, owner, programID), programAccount(programID)}
}

func TestProcessRejectsMalformedData(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(10_000_000_000)
	accounts := depositAccounts(t, owner, programID)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty payload", data: nil},
		{name: "unknown discriminator", data: []byte{0x07}},
		{name: "deposit payload too short", data: []byte{0x00, 0x01, 0x02}},
		{name: "deposit payload too long", data: append(program.EncodeDepositData(1), 0xff)},
		{name: "withdraw with trailing bytes", data: []byte{0x01, 0x00}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := newProcessor().Process(programID, accounts, tc.data)
			require.ErrorIs(t, err, program.ErrInvalidInstructionData)
		})
	}
}

// A failure after the vault has been allocated must not leave the owner
// charged or the vault half-created.
func TestProcessRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	rent := runtime.DefaultRent()

	// Enough to fund the allocation but not the deposit itself.
	initial := rent.MinimumBalance(program.VaultAccountSize) + 50
	owner := newOwner(initial)
	accounts := depositAccounts(t, owner, programID)
	vault := accounts[1]

	err := newProcessor().Process(programID, accounts, program.EncodeDepositData(100))
	require.ErrorIs(t, err, runtime.ErrInsufficientFunds)

	require.Equal(t, initial, owner.Lamports)
	require.True(t, vault.IsUninitialized())
}
