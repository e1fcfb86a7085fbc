package runtime

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrInsufficientFunds is returned when the debited account cannot
	// cover a transfer or an allocation's funding.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountInUse is returned when creating an account at an address
	// that is already allocated.
	ErrAccountInUse = errors.New("account already in use")
)

// SystemProgram is the host's account-creation and lamport-transfer
// facility, invoked by programs through CPI.
type SystemProgram interface {
	// CreateAccount allocates newAccount with space bytes of zeroed data,
	// funds it with lamports taken from payer, and assigns it to owner.
	CreateAccount(payer, newAccount *Account, lamports, space uint64, owner solana.PublicKey) error

	// Transfer moves lamports from one account to another.
	Transfer(from, to *Account, lamports uint64) error
}

// System is the native SystemProgram implementation operating directly on
// the in-instruction account set.
type System struct{}

// NewSystem returns the native system facility.
func NewSystem() *System {
	return &System{}
}

// CreateAccount allocates and funds a fresh account.
func (s *System) CreateAccount(payer, newAccount *Account, lamports, space uint64, owner solana.PublicKey) error {
	if !newAccount.IsUninitialized() {
		return fmt.Errorf("%w: %s", ErrAccountInUse, newAccount.Key)
	}
	if payer.Lamports < lamports {
		return fmt.Errorf("%w: payer %s has %d lamports, needs %d",
			ErrInsufficientFunds, payer.Key, payer.Lamports, lamports)
	}

	payer.Lamports -= lamports
	newAccount.Lamports = lamports
	newAccount.Data = make([]byte, space)
	newAccount.Owner = owner

	return nil
}

// Transfer moves lamports between two accounts.
func (s *System) Transfer(from, to *Account, lamports uint64) error {
	if from.Lamports < lamports {
		return fmt.Errorf("%w: account %s has %d lamports, needs %d",
			ErrInsufficientFunds, from.Key, from.Lamports, lamports)
	}

	from.Lamports -= lamports
	to.Lamports += lamports

	return nil
}
