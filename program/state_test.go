package program_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/sol-vault/program"
)

func TestVaultStateRoundTrip(t *testing.T) {
	t.Parallel()

	state := program.NewVault()
	state.Balance = 123_456_789

	data := make([]byte, program.VaultAccountSize)
	require.NoError(t, state.Encode(data))

	decoded, err := program.DecodeVault(data)
	require.NoError(t, err)
	require.Equal(t, uint64(123_456_789), decoded.Balance)
	require.Equal(t, program.VaultDiscriminator, decoded.Discriminator)
}

func TestVaultBalanceIsLittleEndian(t *testing.T) {
	t.Parallel()

	state := program.NewVault()
	state.Balance = 0x01

	data := make([]byte, program.VaultAccountSize)
	require.NoError(t, state.Encode(data))

	require.Equal(t, byte(0x01), data[8])
	require.Equal(t, byte(0x00), data[15])
}

func TestDecodeVaultRejectsBadData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "too short", data: make([]byte, program.VaultAccountSize-1)},
		{name: "too long", data: make([]byte, program.VaultAccountSize+1)},
		{name: "wrong discriminator", data: make([]byte, program.VaultAccountSize)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := program.DecodeVault(tc.data)
			require.ErrorIs(t, err, program.ErrInvalidAccountData)
		})
	}
}
