package model

// VaultBalanceResponse represents response for GET /vault/balance
type VaultBalanceResponse struct {
	Owner        string `json:"owner"`
	Vault        string `json:"vault"`
	OwnerSOL     string `json:"owner_sol"`
	VaultSOL     string `json:"vault_sol"`
	SpendableSOL string `json:"spendable_sol"`
	Rate         string `json:"rate"`
	SpendableUSD string `json:"spendable_in_usd"`
}

// VaultAddressResponse represents response for GET /vault/address
type VaultAddressResponse struct {
	Owner string `json:"owner"`
	Vault string `json:"vault"`
	Bump  uint8  `json:"bump"`
	QR    string `json:"qr"`
}

// DepositRequest represents request for POST /vault/deposit
type DepositRequest struct {
	Amount string `json:"amount" binding:"required"` // SOL, decimal string
}

// DepositResponse represents response for POST /vault/deposit
type DepositResponse struct {
	TxID  string `json:"txId"`
	Vault string `json:"vault"`
}

// WithdrawResponse represents response for POST /vault/withdraw
type WithdrawResponse struct {
	TxID      string `json:"txId"`
	Withdrawn string `json:"withdrawn_sol"`
}
