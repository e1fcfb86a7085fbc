package program_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/sol-vault/program"
	"github.com/AlexZinkM/sol-vault/runtime"
)

func TestWithdrawBeforeAnyDeposit(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	accounts := withdrawAccounts(t, owner, programID)

	err := newProcessor().Process(programID, accounts, program.EncodeWithdrawData())
	require.ErrorIs(t, err, program.ErrAccountNotInitialized)
}

// Deposit followed by withdraw returns exactly the deposited amount and
// leaves the vault at the rent-exempt floor.
func TestWithdrawReturnsDepositAndLeavesFloor(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	rentExempt := runtime.DefaultRent().MinimumBalance(program.VaultAccountSize)

	const initial = uint64(2_000_000_000)
	const amount = uint64(100_000_000)

	owner := newOwner(initial)
	vault := newVaultFor(t, owner, programID)
	processor := newProcessor()

	deposit := []*runtime.Account{owner, vault, programAccount(programID), systemAccount()}
	require.NoError(t, processor.Process(programID, deposit, program.EncodeDepositData(amount)))

	withdraw := []*runtime.Account{owner, vault, programAccount(programID)}
	require.NoError(t, processor.Process(programID, withdraw, program.EncodeWithdrawData()))

	// The owner is out only the one-time rent funding.
	require.Equal(t, initial-rentExempt, owner.Lamports)
	require.Equal(t, rentExempt, vault.Lamports)
	require.False(t, vault.IsUninitialized())

	state, err := program.DecodeVault(vault.Data)
	require.NoError(t, err)
	require.Equal(t, uint64(0), state.Balance)
}

func TestWithdrawTwiceFailsOnEmptySurplus(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	vault := newVaultFor(t, owner, programID)
	processor := newProcessor()

	deposit := []*runtime.Account{owner, vault, programAccount(programID), systemAccount()}
	require.NoError(t, processor.Process(programID, deposit, program.EncodeDepositData(100_000)))

	withdraw := []*runtime.Account{owner, vault, programAccount(programID)}
	require.NoError(t, processor.Process(programID, withdraw, program.EncodeWithdrawData()))

	err := processor.Process(programID, withdraw, program.EncodeWithdrawData())
	require.ErrorIs(t, err, runtime.ErrInsufficientFunds)
}

// A second signer naming the first owner's vault must fail derivation,
// not drain someone else's funds.
func TestWithdrawRejectsForeignSigner(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	attacker := newOwner(2_000_000_000)
	vault := newVaultFor(t, owner, programID)
	processor := newProcessor()

	deposit := []*runtime.Account{owner, vault, programAccount(programID), systemAccount()}
	require.NoError(t, processor.Process(programID, deposit, program.EncodeDepositData(500_000)))

	vaultBefore := vault.Lamports
	withdraw := []*runtime.Account{attacker, vault, programAccount(programID)}

	err := processor.Process(programID, withdraw, program.EncodeWithdrawData())
	require.ErrorIs(t, err, program.ErrInvalidSeeds)
	require.Equal(t, vaultBefore, vault.Lamports)
}

func TestWithdrawRequiresOwnerSignature(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	accounts := withdrawAccounts(t, owner, programID)
	owner.IsSigner = false

	err := newProcessor().Process(programID, accounts, program.EncodeWithdrawData())
	require.ErrorIs(t, err, program.ErrMissingRequiredSignature)
}

// Lamports sent straight to the vault address, outside any deposit, are
// still part of the spendable surplus.
func TestWithdrawDrainsDirectTransfers(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	rentExempt := runtime.DefaultRent().MinimumBalance(program.VaultAccountSize)

	owner := newOwner(2_000_000_000)
	vault := newVaultFor(t, owner, programID)
	processor := newProcessor()

	deposit := []*runtime.Account{owner, vault, programAccount(programID), systemAccount()}
	require.NoError(t, processor.Process(programID, deposit, program.EncodeDepositData(100_000)))

	vault.Lamports += 77_777 // airdropped outside the program

	withdraw := []*runtime.Account{owner, vault, programAccount(programID)}
	require.NoError(t, processor.Process(programID, withdraw, program.EncodeWithdrawData()))

	require.Equal(t, rentExempt, vault.Lamports)
}

func TestWithdrawRejectsUndecodableVault(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	owner := newOwner(2_000_000_000)
	accounts := withdrawAccounts(t, owner, programID)

	vault := accounts[1]
	vault.Owner = programID
	vault.Lamports = 5_000_000
	vault.Data = make([]byte, program.VaultAccountSize) // discriminator never written

	err := newProcessor().Process(programID, accounts, program.EncodeWithdrawData())
	require.ErrorIs(t, err, program.ErrInvalidAccountData)
}
