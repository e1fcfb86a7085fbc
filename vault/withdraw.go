package vault

import (
	"fmt"
	"time"

	"github.com/AlexZinkM/sol-vault/internal/client"
	"github.com/AlexZinkM/sol-vault/internal/common"
	"github.com/AlexZinkM/sol-vault/internal/crypto"
	"github.com/AlexZinkM/sol-vault/internal/model"
)

// Withdraw drains the vault's entire spendable surplus back to the owner.
// There is no partial withdrawal; the vault stays alive at the rent-exempt
// floor.
// password must be []byte for security (caller should zero it after use)
func Withdraw(filePath string, password []byte, cooldownMinutes int) (*model.WithdrawResponse, error) {
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

	// Create client
	vaultClient, err := client.NewVaultClient(address)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	// Check there is something to withdraw before paying a fee on a
	// transaction the program would reject
	balance, err := vaultClient.GetVaultBalance()
	if err != nil {
		return nil, fmt.Errorf("failed to check balance: %w", err)
	}
	if balance.VaultLamports == 0 {
		return nil, fmt.Errorf("vault does not exist yet: make a deposit first")
	}
	if balance.Spendable == 0 {
		return nil, fmt.Errorf("nothing to withdraw: vault is at the rent-exempt floor of %s SOL",
			common.LamportsToSOL(balance.RentExempt))
	}

	// Create and send transaction
	txID, err := vaultClient.Withdraw(walletData.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	// Save transaction time
	lastSubmitTime = time.Now()

	return &model.WithdrawResponse{
		TxID:      txID,
		Withdrawn: common.LamportsToSOL(balance.Spendable),
	}, nil
}
