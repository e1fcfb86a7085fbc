package model

import (
	"fmt"
	"time"

	"github.com/AlexZinkM/sol-vault/internal/common"
)

// TransactionType transaction type
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

// Transaction represents a vault transaction
type Transaction struct {
	Type        TransactionType `json:"type"`
	TxID        string          `json:"txId"`
	Owner       string          `json:"owner"`
	Vault       string          `json:"vault"`
	Amount      string          `json:"amount"` // SOL, decimal string
	Timestamp   time.Time       `json:"timestamp"`
	BlockNumber int64           `json:"blockNumber"`
	Status      string          `json:"status"`
}

// LogResponse represents response for GET /vault/transactions
type LogResponse struct {
	Owner             string        `json:"owner"`
	Vault             string        `json:"vault"`
	TotalDepositedSOL string        `json:"total_deposited_sol"`
	TotalWithdrawnSOL string        `json:"total_withdrawn_sol"`
	Transactions      []Transaction `json:"transactions"`
}

// LogRequest represents request parameters for GET /vault/transactions
type LogRequest struct {
	Type      *TransactionType `form:"type"`
	TxID      *string          `form:"txId"`
	From      *time.Time       `form:"from"`
	To        *time.Time       `form:"to"`
	MinAmount *string          `form:"minAmount"`
	MaxAmount *string          `form:"maxAmount"`
}

// Validate validates LogRequest filter parameters.
func (r *LogRequest) Validate() error {
	if r.Type != nil && *r.Type != TransactionTypeDeposit && *r.Type != TransactionTypeWithdraw {
		return fmt.Errorf("type must be DEPOSIT or WITHDRAW")
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return fmt.Errorf("to date must be after or equal to from date")
	}
	if r.MinAmount != nil && r.MaxAmount != nil {
		cmp, err := common.CompareSOLAmounts(*r.MinAmount, *r.MaxAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		if cmp == 1 {
			return fmt.Errorf("minAmount must be less than or equal to maxAmount")
		}
	}
	return nil
}
