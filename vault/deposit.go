package vault

import (
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/sol-vault/internal/client"
	"github.com/AlexZinkM/sol-vault/internal/common"
	"github.com/AlexZinkM/sol-vault/internal/crypto"
	"github.com/AlexZinkM/sol-vault/internal/model"
)

var (
	lastSubmitTime time.Time
	submitMutex    sync.Mutex
)

// checkCooldown enforces the submit cooldown shared by deposit and withdraw.
// Caller must hold submitMutex.
func checkCooldown(cooldownMinutes int) error {
	if lastSubmitTime.IsZero() {
		return nil
	}
	cooldownDuration := time.Duration(cooldownMinutes) * time.Minute
	if time.Since(lastSubmitTime) < cooldownDuration {
		remaining := cooldownDuration - time.Since(lastSubmitTime)
		return fmt.Errorf("cooldown active, please wait %v", remaining.Round(time.Second))
	}
	return nil
}

// Deposit sends amount SOL from the owner into the owner's vault, creating
// the vault on first use. The one-time rent-exempt funding is paid by the
// owner on top of the amount.
// password must be []byte for security (caller should zero it after use)
func Deposit(filePath string, password []byte, amount string, cooldownMinutes int) (*model.DepositResponse, error) {
	// Check cooldown
	submitMutex.Lock()
	defer submitMutex.Unlock()

	if err := checkCooldown(cooldownMinutes); err != nil {
		return nil, err
	}

	// Read address from file
	address, err := crypto.ReadWalletAddress(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet address: %w", err)
	}

	// Decrypt private key
	_, walletData, err := crypto.DecryptWallet(filePath, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}

	// Always clear private key from memory
	defer clear(walletData.PrivateKey)

	// Verify private key length (we store full 64-byte key)
	if len(walletData.PrivateKey) != 64 {
		return nil, fmt.Errorf("invalid private key length")
	}

	// Convert amount to lamports (string-based, no float precision loss)
	amountLamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	if amountLamports == 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	// Create client
	vaultClient, err := client.NewVaultClient(address)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	vaultAddress, _, err := vaultClient.VaultAddress()
	if err != nil {
		return nil, err
	}

	// Check the owner can cover the amount; on first deposit the program
	// additionally charges the rent-exempt funding for the new account
	balance, err := vaultClient.GetVaultBalance()
	if err != nil {
		return nil, fmt.Errorf("failed to check balance: %w", err)
	}

	required := amountLamports
	if balance.VaultLamports == 0 {
		required += balance.RentExempt
	}
	if balance.OwnerLamports < required {
		return nil, fmt.Errorf("insufficient SOL balance. Need: %s SOL. Have: %s SOL",
			common.LamportsToSOL(required), common.LamportsToSOL(balance.OwnerLamports))
	}

	// Create and send transaction
	txID, err := vaultClient.Deposit(walletData.PrivateKey, amountLamports)
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	// Save transaction time
	lastSubmitTime = time.Now()

	return &model.DepositResponse{
		TxID:  txID,
		Vault: vaultAddress.String(),
	}, nil
}
