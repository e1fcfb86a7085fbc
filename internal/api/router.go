package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/AlexZinkM/sol-vault/internal/handler"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	vaultHandler, err := handler.NewVaultHandler()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Vault endpoints
	mux.HandleFunc("/vault/generate", vaultHandler.Generate)
	mux.HandleFunc("/vault/balance", vaultHandler.GetBalance)
	mux.HandleFunc("/vault/address", vaultHandler.GetAddress)
	mux.HandleFunc("/vault/deposit", vaultHandler.Deposit)
	mux.HandleFunc("/vault/withdraw", vaultHandler.Withdraw)
	mux.HandleFunc("/vault/transactions", vaultHandler.TransactionHistory)

	return mux, nil
}
