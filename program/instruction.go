package program

import (
	"encoding/binary"
)

// Instruction discriminators, the first byte of every instruction payload.
const (
	InstructionDeposit  byte = 0x00
	InstructionWithdraw byte = 0x01
)

// depositDataSize is discriminator byte + u64 amount.
const depositDataSize = 1 + 8

// EncodeDepositData builds the wire payload for a deposit of amount
// lamports: discriminator 0x00 followed by the amount, little-endian.
func EncodeDepositData(amount uint64) []byte {
	data := make([]byte, depositDataSize)
	data[0] = InstructionDeposit
	binary.LittleEndian.PutUint64(data[1:], amount)
	return data
}

// EncodeWithdrawData builds the wire payload for a withdraw: the
// discriminator 0x01 alone.
func EncodeWithdrawData() []byte {
	return []byte{InstructionWithdraw}
}
