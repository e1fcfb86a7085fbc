package program

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/AlexZinkM/sol-vault/runtime"
)

// withdraw drains the vault's entire spendable surplus back to the owner,
// leaving the account exactly at its rent-exempt floor. There is no partial
// withdrawal and the account is never closed.
//
// Accounts: [owner (signer, writable), vault (writable),
// this program (readonly)].
func (p *Processor) withdraw(programID solana.PublicKey, accounts []*runtime.Account) error {
	if len(accounts) < 3 {
		return fmt.Errorf("%w: withdraw requires 3 accounts, got %d", ErrNotEnoughAccountKeys, len(accounts))
	}
	owner, vault, programAccount := accounts[0], accounts[1], accounts[2]

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

	// The derivation is a pure function of the owner's key, so only a
	// transaction signed by the true owner can name a matching vault.
	// No other access control exists or is needed.
	derived, _, err := DeriveVaultAddress(owner.Key, programID)
	if err != nil {
		return err
	}
	if !derived.Equals(vault.Key) {
		return fmt.Errorf("%w: derived %s, got %s", ErrInvalidSeeds, derived, vault.Key)
	}

	if vault.IsUninitialized() {
		return fmt.Errorf("%w: vault %s", ErrAccountNotInitialized, vault.Key)
	}
	if !vault.Owner.Equals(programID) {
		return fmt.Errorf("%w: vault %s is owned by %s", ErrInvalidAccountData, vault.Key, vault.Owner)
	}

	state, err := DecodeVault(vault.Data)
	if err != nil {
		return err
	}

	rentExempt := p.rent.MinimumBalance(VaultAccountSize)
	if vault.Lamports <= rentExempt {
		return fmt.Errorf("%w: nothing to withdraw above the rent-exempt floor of %d lamports",
			runtime.ErrInsufficientFunds, rentExempt)
	}
	surplus := vault.Lamports - rentExempt

	if err := p.system.Transfer(vault, owner, surplus); err != nil {
		return fmt.Errorf("failed to transfer withdrawal: %w", err)
	}

	state.Balance = 0
	return state.Encode(vault.Data)
}
