package main

import (
	"log"
	"net/http"

	"github.com/AlexZinkM/sol-vault/internal/api"
	"github.com/AlexZinkM/sol-vault/internal/config"

	_ "github.com/AlexZinkM/sol-vault/docs"
)

// @title        sol-vault API
// @version      1.0
// @description  Local custody service: deposits into and withdrawals from a deterministic program-owned Solana vault.
// @BasePath     /
func main() {
	if err := config.Init(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := config.PromptForPassword(); err != nil {
		log.Fatalf("failed to read password: %v", err)
	}

	router, err := api.SetupRouter()
	if err != nil {
		log.Fatalf("failed to set up router: %v", err)
	}

	addr := ":" + config.GetPort()
	log.Printf("vaultd listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
