package program_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/sol-vault/program"
	"github.com/AlexZinkM/sol-vault/runtime"
)

func TestDepositCreatesVaultOnFirstUse(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	rent := runtime.DefaultRent()
	rentExempt := rent.MinimumBalance(program.VaultAccountSize)

	const initial = uint64(2_000_000_000)
	const amount = uint64(100_000_000)

	owner := newOwner(initial)
	accounts := depositAccounts(t, owner, programID)
	vault := accounts[1]

	err := newProcessor().Process(programID, accounts, program.EncodeDepositData(amount))
	require.NoError(t, err)

	// Rent funding is paid by the owner on top of the amount.
	require.Equal(t, initial-rentExempt-amount, owner.Lamports)
	require.Equal(t, rentExempt+amount, vault.Lamports)
	require.Equal(t, programID, vault.Owner)

	state, err := program.DecodeVault(vault.Data)
	require.NoError(t, err)
	require.Equal(t, amount, state.Balance)
}

func TestDepositAddsToExistingVault(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	accounts := depositAccounts(t, owner, programID)
	vault := accounts[1]
	processor := newProcessor()

	require.NoError(t, processor.Process(programID, accounts, program.EncodeDepositData(100_000)))

	lamportsAfterFirst := vault.Lamports
	require.NoError(t, processor.Process(programID, accounts, program.EncodeDepositData(50_000)))

	require.Equal(t, lamportsAfterFirst+50_000, vault.Lamports)

	state, err := program.DecodeVault(vault.Data)
	require.NoError(t, err)
	require.Equal(t, uint64(150_000), state.Balance)
}

func TestDepositRequiresOwnerSignature(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	owner.IsSigner = false
	accounts := depositAccounts(t, owner, programID)

	err := newProcessor().Process(programID, accounts, program.EncodeDepositData(100))
	require.ErrorIs(t, err, program.ErrMissingRequiredSignature)
}

func TestDepositRejectsZeroAmount(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	accounts := depositAccounts(t, owner, programID)

	err := newProcessor().Process(programID, accounts, program.EncodeDepositData(0))
	require.ErrorIs(t, err, program.ErrInvalidInstructionData)
}

func TestDepositRejectsForeignVaultAddress(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	other := newOwner(2_000_000_000)

	// Vault slot derived from a different owner's key.
	accounts := depositAccounts(t, owner, programID)
	accounts[1] = newVaultFor(t, other, programID)

	err := newProcessor().Process(programID, accounts, program.EncodeDepositData(100))
	require.ErrorIs(t, err, program.ErrInvalidSeeds)
}

func TestDepositRejectsShortAccountList(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	accounts := depositAccounts(t, owner, programID)[:3]

	err := newProcessor().Process(programID, accounts, program.EncodeDepositData(100))
	require.ErrorIs(t, err, program.ErrNotEnoughAccountKeys)
}

func TestDepositRejectsCollisionWithForeignAccount(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	accounts := depositAccounts(t, owner, programID)

	// The derived address is already allocated, but by another program.
	vault := accounts[1]
	vault.Owner = solana.NewWallet().PublicKey()
	vault.Lamports = 1
	vault.Data = make([]byte, program.VaultAccountSize)

	err := newProcessor().Process(programID, accounts, program.EncodeDepositData(100))
	require.ErrorIs(t, err, program.ErrAccountAlreadyInitialized)
}

func TestDepositFailsWhenOwnerCannotCoverAmount(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	rentExempt := runtime.DefaultRent().MinimumBalance(program.VaultAccountSize)

	owner := newOwner(rentExempt) // covers allocation only
	accounts := depositAccounts(t, owner, programID)

	err := newProcessor().Process(programID, accounts, program.EncodeDepositData(1))
	require.ErrorIs(t, err, runtime.ErrInsufficientFunds)
}

func TestDepositVerifiesProgramAccounts(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()

	t.Run("wrong program account", func(t *testing.T) {
		owner := newOwner(2_000_000_000)
		accounts := depositAccounts(t, owner, programID)
		accounts[2] = programAccount(solana.NewWallet().PublicKey())

		err := newProcessor().Process(programID, accounts, program.EncodeDepositData(100))
		require.ErrorIs(t, err, program.ErrIncorrectProgramID)
	})

	t.Run("wrong system account", func(t *testing.T) {
		owner := newOwner(2_000_000_000)
		accounts := depositAccounts(t, owner, programID)
		accounts[3] = &runtime.Account{Key: solana.NewWallet().PublicKey()}

		err := newProcessor().Process(programID, accounts, program.EncodeDepositData(100))
		require.ErrorIs(t, err, program.ErrIncorrectProgramID)
	})
}
