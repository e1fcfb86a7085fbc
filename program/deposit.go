package program

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/AlexZinkM/sol-vault/runtime"
)

// deposit moves amount lamports from the owner into the owner's vault,
// allocating the vault at its derived address on first use.
//
// Accounts: [owner (signer, writable), vault (writable),
// this program (readonly), system program (readonly)].
func (p *Processor) deposit(programID solana.PublicKey, accounts []*runtime.Account, amount uint64) error {
	if len(accounts) < 4 {
		return fmt.Errorf("%w: deposit requires 4 accounts, got %d", ErrNotEnoughAccountKeys, len(accounts))
	}
	owner, vault, programAccount, systemAccount := accounts[0], accounts[1], accounts[2], accounts[3]

	if amount == 0 {
		return fmt.Errorf("%w: deposit amount must be greater than zero", ErrInvalidInstructionData)
	}
	if !owner.IsSigner {
		return fmt.Errorf("%w: owner %s", ErrMissingRequiredSignature, owner.Key)
	}
	if !owner.IsWritable || !vault.IsWritable {
		return fmt.Errorf("%w: owner and vault must be writable", ErrInvalidInstructionData)
	}
	if !programAccount.Key.Equals(programID) {
		return fmt.Errorf("%w: expected program account %s, got %s",
			ErrIncorrectProgramID, programID, programAccount.Key)
	}
	if !systemAccount.Key.Equals(solana.SystemProgramID) {
		return fmt.Errorf("%w: expected system program, got %s",
			ErrIncorrectProgramID, systemAccount.Key)
	}

	// The derivation check is the sole authorization anchor tying this
	// vault slot to the signing owner.
	derived, _, err := DeriveVaultAddress(owner.Key, programID)
	if err != nil {
		return err
	}
	if !derived.Equals(vault.Key) {
		return fmt.Errorf("%w: derived %s, got %s", ErrInvalidSeeds, derived, vault.Key)
	}

	// Lazy creation on first deposit. The rent-exempt funding is paid by
	// the owner on top of amount, never deducted from it.
	if vault.IsUninitialized() {
		rentExempt := p.rent.MinimumBalance(VaultAccountSize)
		if err := p.system.CreateAccount(owner, vault, rentExempt, VaultAccountSize, programID); err != nil {
			return fmt.Errorf("failed to create vault account: %w", err)
		}
		if err := NewVault().Encode(vault.Data); err != nil {
			return err
		}
	} else if !vault.Owner.Equals(programID) {
		return fmt.Errorf("%w: vault %s is owned by %s",
			ErrAccountAlreadyInitialized, vault.Key, vault.Owner)
	}

	state, err := DecodeVault(vault.Data)
	if err != nil {
		return err
	}

	if err := p.system.Transfer(owner, vault, amount); err != nil {
		return fmt.Errorf("failed to transfer deposit: %w", err)
	}

	state.Balance += amount
	return state.Encode(vault.Data)
}
