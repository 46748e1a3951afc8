package model

// VaultFile is the persisted form of a sealed mnemonic ("walletData").
type VaultFile struct {
	KDFVersion int    `json:"kdfVersion"`
	Cipher     string `json:"cipher"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// LegacyVaultFile is the record layout written by the browser wallet:
// byte fields as arrays of small integers, no version tag.
type LegacyVaultFile struct {
	Salt             []int `json:"salt"`
	IV               []int `json:"iv"`
	EncryptedContent []int `json:"encryptedContent"`
}
