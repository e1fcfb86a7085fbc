package runtime

// accountStorageOverhead is the per-account metadata size the rent schedule
// charges for on top of the data length.
const accountStorageOverhead = 128

// Rent is the host's rent schedule. An account whose balance stays at or
// above MinimumBalance for its size is never charged and never reaped.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionYears      uint64
}

// DefaultRent returns the mainnet rent schedule.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: 3480,
		ExemptionYears:      2,
	}
}

// MinimumBalance returns the rent-exempt floor for an account holding
// dataLen bytes.
func (r Rent) MinimumBalance(dataLen uint64) uint64 {
	return (accountStorageOverhead + dataLen) * r.LamportsPerByteYear * r.ExemptionYears
}
