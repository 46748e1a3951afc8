package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/seed-wallet/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// MarshalRecord encodes a record as JSON with base64 byte fields.
func MarshalRecord(rec *Record) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: record is missing", ErrCorruptedRecord)
	}

	file := model.VaultFile{
		KDFVersion: rec.KDFVersion,
		Cipher:     rec.Cipher,
		Salt:       base64.StdEncoding.EncodeToString(rec.Salt),
		Nonce:      base64.StdEncoding.EncodeToString(rec.Nonce),
		CipherText: base64.StdEncoding.EncodeToString(rec.CipherText),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

// ParseRecord decodes a persisted record. Both the current format and the legacy
// browser format (integer arrays, implicit kdf version 1 with AES-256-GCM) are accepted.
// Any malformed input fails with ErrCorruptedRecord.
func ParseRecord(data []byte) (*Record, error) {
	// Skip UTF-8 BOM if present
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: record is empty", ErrCorruptedRecord)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedRecord, err)
	}
	if _, ok := fields["encryptedContent"]; ok {
		return parseLegacyRecord(data)
	}

	var file model.VaultFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedRecord, err)
	}

	switch {
	case file.KDFVersion == 0:
		return nil, fmt.Errorf("%w: missing kdfVersion", ErrCorruptedRecord)
	case file.Cipher == "":
		return nil, fmt.Errorf("%w: missing cipher", ErrCorruptedRecord)
	}

	salt, err := decodeField("salt", file.Salt)
	if err != nil {
		return nil, err
	}
	nonce, err := decodeField("nonce", file.Nonce)
	if err != nil {
		return nil, err
	}
	ciphertext, err := decodeField("cipherText", file.CipherText)
	if err != nil {
		return nil, err
	}

	return &Record{
		KDFVersion: file.KDFVersion,
		Cipher:     file.Cipher,
		Salt:       salt,
		Nonce:      nonce,
		CipherText: ciphertext,
	}, nil
}

func decodeField(name, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: missing %s", ErrCorruptedRecord, name)
	}
	b, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrCorruptedRecord, name, err)
	}
	return b, nil
}

func parseLegacyRecord(data []byte) (*Record, error) {
	var legacy model.LegacyVaultFile
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedRecord, err)
	}

	salt, err := legacyBytes("salt", legacy.Salt)
	if err != nil {
		return nil, err
	}
	nonce, err := legacyBytes("iv", legacy.IV)
	if err != nil {
		return nil, err
	}
	ciphertext, err := legacyBytes("encryptedContent", legacy.EncryptedContent)
	if err != nil {
		return nil, err
	}

	return &Record{
		KDFVersion: KDFVersion1,
		Cipher:     CipherAES256GCM,
		Salt:       salt,
		Nonce:      nonce,
		CipherText: ciphertext,
	}, nil
}

func legacyBytes(name string, values []int) ([]byte, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrCorruptedRecord, name)
	}
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 0xFF {
			return nil, fmt.Errorf("%w: %s[%d] is not a byte", ErrCorruptedRecord, name, i)
		}
		out[i] = byte(v)
	}
	return out, nil
}
