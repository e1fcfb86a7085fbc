package client

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/AlexZinkM/sol-vault/internal/config"
	"github.com/AlexZinkM/sol-vault/program"
)

// VaultClient is a client for working with the custody program over Solana RPC
type VaultClient struct {
	rpcClient   *rpc.Client
	rpcURL      string
	programID   solana.PublicKey
	ownerPubkey solana.PublicKey // address passed to NewVaultClient
}

// VaultBalance holds the lamport balances relevant to one owner's vault
type VaultBalance struct {
	OwnerLamports uint64
	VaultLamports uint64
	RentExempt    uint64
	Spendable     uint64
}

// VaultTransaction represents one deposit or withdraw observed on the vault
type VaultTransaction struct {
	Type        string // "DEPOSIT" or "WITHDRAW"
	TxID        string
	Owner       string
	Vault       string
	Lamports    uint64
	Timestamp   time.Time
	BlockNumber int64
	Status      string
}

// NewVaultClient creates a new client for the given owner address.
func NewVaultClient(address string) (*VaultClient, error) {
	ownerPubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid Solana address: %w", err)
	}

	programID, err := solana.PublicKeyFromBase58(config.GetVaultProgramID())
	if err != nil {
		return nil, fmt.Errorf("invalid vault program id: %w", err)
	}

	rpcURL := config.GetSolanaRPCURL()

	return &VaultClient{
		rpcClient:   rpc.New(rpcURL),
		rpcURL:      rpcURL,
		programID:   programID,
		ownerPubkey: ownerPubkey,
	}, nil
}

// VaultAddress derives the owner's vault address and bump under the program
func (c *VaultClient) VaultAddress() (solana.PublicKey, uint8, error) {
	return program.DeriveVaultAddress(c.ownerPubkey, c.programID)
}

// GetVaultBalance gets the owner and vault lamport balances and the
// spendable surplus above the rent-exempt floor
func (c *VaultClient) GetVaultBalance() (*VaultBalance, error) {
	vaultAddress, _, err := c.VaultAddress()
	if err != nil {
		return nil, err
	}

	ownerBalance, err := c.rpcClient.GetBalance(
		context.Background(),
		c.ownerPubkey,
		rpc.CommitmentConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner balance: %w", err)
	}

	vaultBalance, err := c.rpcClient.GetBalance(
		context.Background(),
		vaultAddress,
		rpc.CommitmentConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get vault balance: %w", err)
	}

	// Ask the node rather than hardcoding the schedule, so a cluster with a
	// different rent configuration stays correct
	rentExempt, err := c.rpcClient.GetMinimumBalanceForRentExemption(
		context.Background(),
		program.VaultAccountSize,
		rpc.CommitmentFinalized,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get rent-exempt minimum: %w", err)
	}

	var spendable uint64
	if vaultBalance.Value > rentExempt {
		spendable = vaultBalance.Value - rentExempt
	}

	return &VaultBalance{
		OwnerLamports: ownerBalance.Value,
		VaultLamports: vaultBalance.Value,
		RentExempt:    rentExempt,
		Spendable:     spendable,
	}, nil
}

// Deposit builds, signs and sends a deposit of amountLamports into the
// owner's vault, creating the vault on first use.
// privateKeyBytes must be full 64-byte Solana private key (caller should zero it after use)
func (c *VaultClient) Deposit(privateKeyBytes []byte, amountLamports uint64) (string, error) {
	if amountLamports == 0 {
		return "", fmt.Errorf("deposit amount must be greater than zero")
	}

	vaultAddress, _, err := c.VaultAddress()
	if err != nil {
		return "", err
	}

	// Account order is positional at the wire level:
	// owner, vault, program, system program
	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(c.ownerPubkey, true, true),
		solana.NewAccountMeta(vaultAddress, true, false),
		solana.NewAccountMeta(c.programID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}

	instruction := solana.NewInstruction(c.programID, accounts, program.EncodeDepositData(amountLamports))

	return c.signAndSend(privateKeyBytes, instruction)
}

// Withdraw builds, signs and sends a withdraw of the vault's entire
// spendable surplus back to the owner.
// privateKeyBytes must be full 64-byte Solana private key (caller should zero it after use)
func (c *VaultClient) Withdraw(privateKeyBytes []byte) (string, error) {
	vaultAddress, _, err := c.VaultAddress()
	if err != nil {
		return "", err
	}

	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(c.ownerPubkey, true, true),
		solana.NewAccountMeta(vaultAddress, true, false),
		solana.NewAccountMeta(c.programID, false, false),
	}

	instruction := solana.NewInstruction(c.programID, accounts, program.EncodeWithdrawData())

	return c.signAndSend(privateKeyBytes, instruction)
}

// signAndSend wraps one instruction in a transaction signed by the owner
func (c *VaultClient) signAndSend(privateKeyBytes []byte, instruction solana.Instruction) (string, error) {
	// Validate private key (full 64-byte key)
	if len(privateKeyBytes) != 64 {
		return "", fmt.Errorf("invalid private key length: expected 64 bytes")
	}

	wallet := solana.PrivateKey(privateKeyBytes)

	// Verify wallet matches the owner address
	if !wallet.PublicKey().Equals(c.ownerPubkey) {
		return "", fmt.Errorf("private key does not match our address")
	}

	// Get latest blockhash (GetRecentBlockhash is deprecated, use GetLatestBlockhash)
	recent, err := c.rpcClient.GetLatestBlockhash(context.Background(), rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		recent.Value.Blockhash,
		solana.TransactionPayer(c.ownerPubkey),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	// Sign transaction
	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if wallet.PublicKey().Equals(key) {
			return &wallet
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	// Send transaction
	sig, err := c.rpcClient.SendTransactionWithOpts(
		context.Background(),
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false, // Transaction validation before node
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return sig.String(), nil
}

// GetVaultTransactions gets the vault's deposit/withdraw history
func (c *VaultClient) GetVaultTransactions() ([]VaultTransaction, error) {
	vaultAddress, _, err := c.VaultAddress()
	if err != nil {
		return nil, err
	}

	limit := 100
	sigs, err := c.rpcClient.GetSignaturesForAddressWithOpts(
		context.Background(),
		vaultAddress,
		&rpc.GetSignaturesForAddressOpts{
			Limit: &limit,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get vault signatures: %w", err)
	}

	transactions := make([]VaultTransaction, 0, len(sigs))

	for _, sigInfo := range sigs {
		// maxVersion is hardcoded - no point making it env var because
		// new version support requires library update and rebuild anyway
		maxVersion := uint64(0)
		tx, err := c.rpcClient.GetTransaction(
			context.Background(),
			sigInfo.Signature,
			&rpc.GetTransactionOpts{
				Encoding:                       solana.EncodingBase64,
				MaxSupportedTransactionVersion: &maxVersion,
			},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get transaction: %w", err)
		}

		parsed, err := c.parseVaultTransaction(tx, sigInfo.Signature, vaultAddress)
		if err != nil {
			return nil, err
		}
		if parsed != nil {
			transactions = append(transactions, *parsed)
		}
	}

	return transactions, nil
}

// parseVaultTransaction classifies a transaction touching the vault from the
// vault's lamport delta: funds in is a deposit, funds out is a withdraw.
func (c *VaultClient) parseVaultTransaction(tx *rpc.GetTransactionResult, signature solana.Signature, vaultAddress solana.PublicKey) (*VaultTransaction, error) {
	timestamp := time.Now()
	if tx.BlockTime != nil {
		timestamp = time.Unix(int64(*tx.BlockTime), 0)
	}

	status := "success"
	if tx.Meta != nil && tx.Meta.Err != nil {
		status = "failed"
	}

	decodedTx, err := tx.Transaction.GetTransaction()
	if err != nil || tx.Meta == nil {
		return nil, nil
	}

	var vaultDelta int64
	found := false
	for i, key := range decodedTx.Message.AccountKeys {
		if key.Equals(vaultAddress) {
			preBal := tx.Meta.PreBalances[i]
			postBal := tx.Meta.PostBalances[i]
			if postBal >= preBal {
				vaultDelta = int64(postBal - preBal)
			} else {
				vaultDelta = -int64(preBal - postBal)
			}
			found = true
			break
		}
	}
	if !found || vaultDelta == 0 {
		return nil, nil
	}

	txType := "DEPOSIT"
	lamports := uint64(vaultDelta)
	if vaultDelta < 0 {
		txType = "WITHDRAW"
		lamports = uint64(-vaultDelta)
	}

	return &VaultTransaction{
		Type:        txType,
		TxID:        signature.String(),
		Owner:       c.ownerPubkey.String(),
		Vault:       vaultAddress.String(),
		Lamports:    lamports,
		Timestamp:   timestamp,
		BlockNumber: int64(tx.Slot),
		Status:      status,
	}, nil
}
