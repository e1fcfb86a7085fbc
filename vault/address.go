package vault

import (
	"fmt"

	"github.com/AlexZinkM/sol-vault/internal/client"
	"github.com/AlexZinkM/sol-vault/internal/crypto"
	"github.com/AlexZinkM/sol-vault/internal/model"
)

// GetDepositAddress derives the owner's vault address and returns it with a
// QR code. The derivation is pure, so no RPC round trip is needed.
func GetDepositAddress(filePath string) (*model.VaultAddressResponse, error) {
	// Read address from file
	address, err := crypto.ReadWalletAddress(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet address: %w", err)
	}

	vaultClient, err := client.NewVaultClient(address)
	if err != nil {
		return nil, err
	}

	vaultAddress, bump, err := vaultClient.VaultAddress()
	if err != nil {
		return nil, err
	}

	qrCode, err := generateQRCode(vaultAddress.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return &model.VaultAddressResponse{
		Owner: address,
		Vault: vaultAddress.String(),
		Bump:  bump,
		QR:    qrCode,
	}, nil
}
