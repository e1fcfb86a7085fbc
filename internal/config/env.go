package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetWalletPasswordBytes()
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	SubmitCooldown int    `envconfig:"SUBMIT_COOLDOWN_MINUTES" default:"4"`
	WalletFilePath string `envconfig:"WALLET_FILE_PATH" required:"true"`
	SolanaRPCURL   string `envconfig:"SOLANA_RPC_URL" default:"https://api.mainnet-beta.solana.com"`
	VaultProgramID string `envconfig:"VAULT_PROGRAM_ID" required:"true"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSubmitCooldown returns the transaction-submit cooldown in minutes
func GetSubmitCooldown() int {
	return Get().SubmitCooldown
}

// GetWalletFilePath returns path to the .vlt keystore file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetVaultProgramID returns the custody program address from configuration
func GetVaultProgramID() string {
	return Get().VaultProgramID
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = raw
	return nil
}

// GetWalletPasswordBytes returns a copy of the password entered at startup.
// Caller should zero the copy after use.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("wallet password not set: call PromptForPassword first")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
