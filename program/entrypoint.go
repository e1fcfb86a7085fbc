// Package program implements the vault custody program: a deterministic,
// program-owned account per user holding a lamport balance, created lazily
// on first deposit and drainable only by its owner.
package program

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/AlexZinkM/sol-vault/runtime"
)

// Processor routes instructions to their handlers. It is a pure function of
// (accounts, instruction data): every invocation re-derives and re-validates
// everything from the supplied accounts, and no state is kept between calls.
type Processor struct {
	rent   runtime.Rent
	system runtime.SystemProgram
}

// NewProcessor builds a processor on top of the host's rent schedule and
// system facility.
func NewProcessor(rent runtime.Rent, system runtime.SystemProgram) *Processor {
	return &Processor{
		rent:   rent,
		system: system,
	}
}

// Process reads the leading discriminator byte and dispatches to the deposit
// or withdraw handler. On any handler error the account set is restored to
// its pre-instruction state, so a failed instruction leaves no partial
// mutation, matching the host's all-or-nothing transaction semantics.
func (p *Processor) Process(programID solana.PublicKey, accounts []*runtime.Account, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalidInstructionData)
	}

	snapshot := runtime.TakeSnapshot(accounts)

	var err error
	switch data[0] {
	case InstructionDeposit:
		if len(data) != depositDataSize {
			return fmt.Errorf("%w: deposit payload must be %d bytes, got %d",
				ErrInvalidInstructionData, depositDataSize, len(data))
		}
		amount := binary.LittleEndian.Uint64(data[1:])
		err = p.deposit(programID, accounts, amount)

	case InstructionWithdraw:
		if len(data) != 1 {
			return fmt.Errorf("%w: withdraw carries no payload, got %d extra bytes",
				ErrInvalidInstructionData, len(data)-1)
		}
		err = p.withdraw(programID, accounts)

	default:
		return fmt.Errorf("%w: unknown discriminator 0x%02x", ErrInvalidInstructionData, data[0])
	}

	if err != nil {
		snapshot.Restore(accounts)
	}
	return err
}
