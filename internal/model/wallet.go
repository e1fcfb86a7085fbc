package model

// KeystoreFile represents .vlt keystore file structure
type KeystoreFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // 64 bytes (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}

// GenerateResponse represents response for POST /vault/generate
type GenerateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}
