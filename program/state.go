package program

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// VaultAccountSize is the fixed on-chain size of a vault account:
// 8-byte discriminator + 8-byte balance field.
const VaultAccountSize = 16

// VaultDiscriminator tags an account as a vault of this program.
var VaultDiscriminator = [8]byte{'s', 'o', 'l', 'v', 'a', 'u', 'l', 't'}

// Vault is the on-chain state of a single vault account. Balance tracks
// lamports deposited through the program; the account's actual lamport
// balance additionally carries the rent-exempt funding.
type Vault struct {
	Discriminator [8]byte
	Balance       uint64
}

// NewVault returns the initial state written on first deposit.
func NewVault() *Vault {
	return &Vault{Discriminator: VaultDiscriminator}
}

// DecodeVault parses a vault account's data.
func DecodeVault(data []byte) (*Vault, error) {
	if len(data) != VaultAccountSize {
		return nil, fmt.Errorf("%w: vault account must be %d bytes, got %d",
			ErrInvalidAccountData, VaultAccountSize, len(data))
	}

	var vault Vault
	if err := bin.NewBinDecoder(data).Decode(&vault); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountData, err)
	}

	if vault.Discriminator != VaultDiscriminator {
		return nil, fmt.Errorf("%w: wrong account discriminator", ErrInvalidAccountData)
	}

	return &vault, nil
}

// Encode writes the vault state into dst, which must be the account's
// VaultAccountSize-byte data slice.
func (v *Vault) Encode(dst []byte) error {
	if len(dst) != VaultAccountSize {
		return fmt.Errorf("%w: vault account must be %d bytes, got %d",
			ErrInvalidAccountData, VaultAccountSize, len(dst))
	}

	buf := new(bytes.Buffer)
	if err := bin.NewBinEncoder(buf).Encode(v); err != nil {
		return fmt.Errorf("failed to encode vault state: %w", err)
	}

	copy(dst, buf.Bytes())
	return nil
}
