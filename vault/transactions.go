package vault

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/AlexZinkM/sol-vault/internal/client"
	"github.com/AlexZinkM/sol-vault/internal/common"
	"github.com/AlexZinkM/sol-vault/internal/crypto"
	"github.com/AlexZinkM/sol-vault/internal/model"
)

// GetTransactions gets vault transactions with filtering
func GetTransactions(filePath string, req *model.LogRequest) (*model.LogResponse, error) {
	// Read address from file
	address, err := crypto.ReadWalletAddress(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet address: %w", err)
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

	// Get all vault transactions
	vaultTxs, err := vaultClient.GetVaultTransactions()
	if err != nil {
		return nil, err
	}

	// Convert to model format
	resultTransactions := make([]model.Transaction, 0, len(vaultTxs))
	for _, tx := range vaultTxs {
		amount := common.LamportsToSOL(tx.Lamports)

		// Filter by type
		if req.Type != nil {
			if string(*req.Type) != tx.Type {
				continue
			}
		}

		// Filter by txId
		if req.TxID != nil && *req.TxID != tx.TxID {
			continue
		}

		// Filter by dates
		if req.From != nil && tx.Timestamp.Before(*req.From) {
			continue
		}
		if req.To != nil && tx.Timestamp.After(*req.To) {
			continue
		}

		// Filter by amount (using integer comparison to avoid float precision issues)
		if req.MinAmount != nil {
			cmp, err := common.CompareSOLAmounts(amount, *req.MinAmount)
			if err != nil {
				return nil, fmt.Errorf("failed to compare min amount: %w", err)
			}
			if cmp < 0 {
				continue
			}
		}
		if req.MaxAmount != nil {
			cmp, err := common.CompareSOLAmounts(amount, *req.MaxAmount)
			if err != nil {
				return nil, fmt.Errorf("failed to compare max amount: %w", err)
			}
			if cmp > 0 {
				continue
			}
		}

		resultTransactions = append(resultTransactions, model.Transaction{
			Type:        model.TransactionType(tx.Type),
			TxID:        tx.TxID,
			Owner:       tx.Owner,
			Vault:       tx.Vault,
			Amount:      amount,
			Timestamp:   tx.Timestamp,
			BlockNumber: tx.BlockNumber,
			Status:      tx.Status,
		})
	}

	// Sort by time DESC (newest first)
	sort.Slice(resultTransactions, func(i, j int) bool {
		return resultTransactions[i].Timestamp.After(resultTransactions[j].Timestamp)
	})

	// Calculate totals (use float only for display, not for critical operations)
	var totalDeposited, totalWithdrawn float64
	for _, tx := range resultTransactions {
		amount, err := strconv.ParseFloat(tx.Amount, 64)
		if err != nil {
			continue
		}
		switch tx.Type {
		case model.TransactionTypeDeposit:
			totalDeposited += amount
		case model.TransactionTypeWithdraw:
			totalWithdrawn += amount
		}
	}

	return &model.LogResponse{
		Owner:             address,
		Vault:             vaultAddress.String(),
		TotalDepositedSOL: fmt.Sprintf("%.9f", totalDeposited),
		TotalWithdrawnSOL: fmt.Sprintf("%.9f", totalWithdrawn),
		Transactions:      resultTransactions,
	}, nil
}
