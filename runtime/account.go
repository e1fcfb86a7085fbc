package runtime

import (
	"github.com/gagliardetto/solana-go"
)

// Account is the in-instruction view of a Solana account, as loaded by the
// host for a single transaction. The program mutates Lamports and Data;
// everything else is fixed by the host before dispatch.
type Account struct {
	Key        solana.PublicKey
	Lamports   uint64
	Data       []byte
	Owner      solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

// IsUninitialized reports whether the account has never been allocated:
// no data, no owner, no funds.
func (a *Account) IsUninitialized() bool {
	return len(a.Data) == 0 && a.Owner.IsZero() && a.Lamports == 0
}

// Snapshot is a deep copy of an account set, used to roll back all
// mutations when an instruction fails partway.
type Snapshot []Account

// TakeSnapshot copies the mutable state of every account.
func TakeSnapshot(accounts []*Account) Snapshot {
	snap := make(Snapshot, len(accounts))
	for i, acc := range accounts {
		snap[i] = *acc
		snap[i].Data = append([]byte(nil), acc.Data...)
	}
	return snap
}

// Restore writes the snapshot back over the account set. The account slice
// must be the one the snapshot was taken from.
func (s Snapshot) Restore(accounts []*Account) {
	for i := range s {
		*accounts[i] = s[i]
		accounts[i].Data = append([]byte(nil), s[i].Data...)
	}
}
