package runtime_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/sol-vault/runtime"
)

func TestMinimumBalance(t *testing.T) {
	t.Parallel()

	rent := runtime.DefaultRent()

	// (128 + 16) * 3480 * 2, the mainnet floor for a 16-byte account.
	require.Equal(t, uint64(1_002_240), rent.MinimumBalance(16))
	require.Equal(t, uint64(890_880), rent.MinimumBalance(0))
}

func TestSystemCreateAccount(t *testing.T) {
	t.Parallel()

	owner := solana.NewWallet().PublicKey()
	programID := solana.NewWallet().PublicKey()
	system := runtime.NewSystem()

	payer := &runtime.Account{Key: owner, Lamports: 1_000}
	fresh := &runtime.Account{Key: solana.NewWallet().PublicKey()}

	require.NoError(t, system.CreateAccount(payer, fresh, 400, 16, programID))
	require.Equal(t, uint64(600), payer.Lamports)
	require.Equal(t, uint64(400), fresh.Lamports)
	require.Len(t, fresh.Data, 16)
	require.Equal(t, programID, fresh.Owner)

	t.Run("address already in use", func(t *testing.T) {
		err := system.CreateAccount(payer, fresh, 100, 16, programID)
		require.ErrorIs(t, err, runtime.ErrAccountInUse)
	})

	t.Run("payer cannot fund", func(t *testing.T) {
		another := &runtime.Account{Key: solana.NewWallet().PublicKey()}
		err := system.CreateAccount(payer, another, 10_000, 16, programID)
		require.ErrorIs(t, err, runtime.ErrInsufficientFunds)
		require.True(t, another.IsUninitialized())
	})
}

func TestSystemTransfer(t *testing.T) {
	t.Parallel()

	system := runtime.NewSystem()
	from := &runtime.Account{Key: solana.NewWallet().PublicKey(), Lamports: 500}
	to := &runtime.Account{Key: solana.NewWallet().PublicKey(), Lamports: 10}

	require.NoError(t, system.Transfer(from, to, 200))
	require.Equal(t, uint64(300), from.Lamports)
	require.Equal(t, uint64(210), to.Lamports)

	err := system.Transfer(from, to, 301)
	require.ErrorIs(t, err, runtime.ErrInsufficientFunds)
	require.Equal(t, uint64(300), from.Lamports)
}

func TestSnapshotRestore(t *testing.T) {
	t.Parallel()

	account := &runtime.Account{
		Key:      solana.NewWallet().PublicKey(),
		Lamports: 900,
		Data:     []byte{1, 2, 3},
	}
	accounts := []*runtime.Account{account}

	snap := runtime.TakeSnapshot(accounts)

	account.Lamports = 0
	account.Data[0] = 99
	account.Owner = solana.NewWallet().PublicKey()

	snap.Restore(accounts)

	require.Equal(t, uint64(900), account.Lamports)
	require.Equal(t, []byte{1, 2, 3}, account.Data)
	require.True(t, account.Owner.IsZero())
}
