package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AlexZinkM/sol-vault/internal/config"
	"github.com/AlexZinkM/sol-vault/internal/model"
	"github.com/AlexZinkM/sol-vault/vault"
)

// VaultHandler holds configuration for vault operations
type VaultHandler struct {
	filePath        string
	cooldownMinutes int
}

// NewVaultHandler creates a new VaultHandler with config values
func NewVaultHandler() (*VaultHandler, error) {
	filePath := config.GetWalletFilePath()
	if filePath == "" {
		return nil, errors.New("WALLET_FILE_PATH not set")
	}

	return &VaultHandler{
		filePath:        filePath,
		cooldownMinutes: config.GetSubmitCooldown(),
	}, nil
}

// Generate handles POST /vault/generate
// @Summary      Generate new owner wallet
// @Description  Generates a new Solana keypair and saves it to a .vlt keystore file
// @Tags         vault
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Router       /vault/generate [post]
func (h *VaultHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := config.GetWalletPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	address, err := vault.GenerateWallet(h.filePath, passwordBytes)
	if err != nil {
		if vault.IsFileExistsError(err) {
			writeError(w, http.StatusConflict, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// GetBalance handles GET /vault/balance
// @Summary      Get vault balance (USD = spendable SOL * rate)
// @Description  Gets owner and vault SOL balances with the spendable surplus above the rent-exempt floor
// @Tags         vault
// @Produce      json
// @Success      200  {object}  model.VaultBalanceResponse
// @Router       /vault/balance [get]
func (h *VaultHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	balance, err := vault.GetBalance(h.filePath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// GetAddress handles GET /vault/address
// @Summary      Get vault deposit address
// @Description  Derives the owner's deterministic vault address with its bump and a QR code
// @Tags         vault
// @Produce      json
// @Success      200  {object}  model.VaultAddressResponse
// @Router       /vault/address [get]
func (h *VaultHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address, err := vault.GetDepositAddress(h.filePath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, address)
}

// Deposit handles POST /vault/deposit
// @Summary      Deposit SOL into the vault
// @Description  Sends a deposit instruction; the vault account is created on first deposit
// @Tags         vault
// @Accept       json
// @Produce      json
// @Param        request  body      model.DepositRequest  true  "Deposit data"
// @Success      200      {object}  model.DepositResponse
// @Router       /vault/deposit [post]
func (h *VaultHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := config.GetWalletPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	resp, err := vault.Deposit(h.filePath, passwordBytes, req.Amount, h.cooldownMinutes)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Withdraw handles POST /vault/withdraw
// @Summary      Withdraw everything spendable from the vault
// @Description  Drains the vault's surplus above the rent-exempt floor back to the owner
// @Tags         vault
// @Produce      json
// @Success      200  {object}  model.WithdrawResponse
// @Router       /vault/withdraw [post]
func (h *VaultHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := config.GetWalletPasswordBytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer clear(passwordBytes) // Always clear password from memory

	resp, err := vault.Withdraw(h.filePath, passwordBytes, h.cooldownMinutes)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// TransactionHistory handles GET /vault/transactions
// @Summary      Get vault transactions
// @Description  Gets list of vault deposits and withdrawals with filtering capability
// @Tags         vault
// @Produce      json
// @Param        type       query     string   false  "Transaction type: DEPOSIT or WITHDRAW"
// @Param        txId       query     string   false  "Transaction ID"
// @Param        from       query     string   false  "Start date (YYYY-MM-DD)"
// @Param        to         query     string   false  "End date (YYYY-MM-DD)"
// @Param        minAmount  query     string   false  "Minimum amount in SOL"
// @Param        maxAmount  query     string   false  "Maximum amount in SOL"
// @Success      200  {object}  model.LogResponse
// @Router       /vault/transactions [get]
func (h *VaultHandler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	var req model.LogRequest

	// Parse date parameters (YYYY-MM-DD)
	const dateLayout = "2006-01-02"
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		t, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("invalid from date: use YYYY-MM-DD (e.g. 2006-01-02)"))
			return
		}
		req.From = &t
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		t, err := time.Parse(dateLayout, toStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.New("invalid to date: use YYYY-MM-DD (e.g. 2006-01-02)"))
			return
		}
		// End of day so filter is inclusive
		t = t.Add(24*time.Hour - time.Nanosecond)
		req.To = &t
	}

	// Parse transaction type
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		txType := model.TransactionType(typeStr)
		req.Type = &txType
	}

	// Parse txId
	if txID := r.URL.Query().Get("txId"); txID != "" {
		req.TxID = &txID
	}

	// Parse amounts
	if minAmount := r.URL.Query().Get("minAmount"); minAmount != "" {
		req.MinAmount = &minAmount
	}
	if maxAmount := r.URL.Query().Get("maxAmount"); maxAmount != "" {
		req.MaxAmount = &maxAmount
	}

	// Validate
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	logResp, err := vault.GetTransactions(h.filePath, &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, logResp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}
