package solana

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// DefaultMnemonicWords is the phrase length used for new wallets.
const DefaultMnemonicWords = 12

// verifyIndices are the 0-based word positions the user re-enters after writing
// the phrase down (words #3, #6 and #9).
var verifyIndices = []int{2, 5, 8}

// NewMnemonic generates a checksummed BIP-39 phrase of the given word count
// (12, 15, 18, 21 or 24).
func NewMnemonic(words int) ([]byte, error) {
	if words < 12 || words > 24 || words%3 != 0 {
		return nil, fmt.Errorf("unsupported mnemonic length %d: use 12, 15, 18, 21 or 24 words", words)
	}

	entropy, err := bip39.NewEntropy(words * 32 / 3)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return []byte(mnemonic), nil
}

// ValidateMnemonic reports whether phrase is a valid BIP-39 mnemonic.
func ValidateMnemonic(phrase string) bool {
	return bip39.IsMnemonicValid(NormalizeMnemonic(phrase))
}

// verifyWords checks the user's answers for the words at verifyIndices.
// Comparison ignores case and surrounding whitespace.
func verifyWords(mnemonic []byte, answers []string) bool {
	words := strings.Fields(string(mnemonic))
	if len(answers) != len(verifyIndices) {
		return false
	}
	for i, idx := range verifyIndices {
		if idx >= len(words) {
			return false
		}
		if !strings.EqualFold(strings.TrimSpace(answers[i]), words[idx]) {
			return false
		}
	}
	return true
}

// VerifyPositions returns the 1-based word numbers the user must re-enter.
func VerifyPositions() []int {
	out := make([]int, len(verifyIndices))
	for i, idx := range verifyIndices {
		out[i] = idx + 1
	}
	return out
}
