package program

import "errors"

var (
	// ErrInvalidInstructionData is returned for an unknown discriminator
	// or a malformed instruction payload.
	ErrInvalidInstructionData = errors.New("invalid instruction data")

	// ErrMissingRequiredSignature is returned when the owner account did
	// not sign the transaction.
	ErrMissingRequiredSignature = errors.New("missing required signature")

	// ErrInvalidSeeds is returned when the supplied vault account does not
	// match the address derived from the owner's key. This is the
	// program's authorization failure mode.
	ErrInvalidSeeds = errors.New("supplied vault does not match derived address")

	// ErrAccountNotInitialized is returned by withdraw when the owner's
	// vault has never been funded.
	ErrAccountNotInitialized = errors.New("vault account not initialized")

	// ErrAccountAlreadyInitialized is returned by deposit when the derived
	// address is already allocated but owned by a different program.
	ErrAccountAlreadyInitialized = errors.New("account already initialized with different owner")

	// ErrInvalidAccountData is returned when an initialized vault's data
	// cannot be decoded as a vault account.
	ErrInvalidAccountData = errors.New("unexpected account data")

	// ErrNotEnoughAccountKeys is returned when the instruction names fewer
	// accounts than the handler requires.
	ErrNotEnoughAccountKeys = errors.New("not enough account keys")

	// ErrIncorrectProgramID is returned when a program account in the
	// instruction's account list is not the expected program.
	ErrIncorrectProgramID = errors.New("incorrect program id")
)
