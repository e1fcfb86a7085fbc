package vault

import (
	"fmt"
	"strconv"

	"github.com/AlexZinkM/sol-vault/internal/client"
	"github.com/AlexZinkM/sol-vault/internal/common"
	"github.com/AlexZinkM/sol-vault/internal/crypto"
	"github.com/AlexZinkM/sol-vault/internal/model"
)

// GetBalance gets the owner's and vault's balances
func GetBalance(filePath string) (*model.VaultBalanceResponse, error) {
	// Read address from file
	address, err := crypto.ReadWalletAddress(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet address: %w", err)
	}

	// Create clients
	vaultClient, err := client.NewVaultClient(address)
	if err != nil {
		return nil, err
	}
	coingeckoClient := client.NewCoinGeckoClient()

	vaultAddress, _, err := vaultClient.VaultAddress()
	if err != nil {
		return nil, err
	}

	// Get lamport balances and the spendable surplus
	balance, err := vaultClient.GetVaultBalance()
	if err != nil {
		return nil, err
	}

	// Convert to display strings (no float precision loss)
	ownerSOL := common.LamportsToSOL(balance.OwnerLamports)
	vaultSOL := common.LamportsToSOL(balance.VaultLamports)
	spendableSOL := common.LamportsToSOL(balance.Spendable)

	// Get SOL/USD rate
	rate, err := coingeckoClient.GetSOLtoUSDrate()
	if err != nil {
		return nil, fmt.Errorf("failed to get rate: %w", err)
	}

	// Calculate USD (use float only for display, not for critical operations)
	spendableFloat, _ := strconv.ParseFloat(spendableSOL, 64)
	rateFloat, _ := strconv.ParseFloat(rate, 64)
	usd := fmt.Sprintf("%.2f", spendableFloat*rateFloat)

	return &model.VaultBalanceResponse{
		Owner:        address,
		Vault:        vaultAddress.String(),
		OwnerSOL:     ownerSOL,
		VaultSOL:     vaultSOL,
		SpendableSOL: spendableSOL,
		Rate:         rate,
		SpendableUSD: usd,
	}, nil
}
