package policy

import (
	"errors"
	"fmt"

	"github.com/nbutton23/zxcvbn-go"
)

const (
	MinPasswordLength = 8
	MinPasswordScore  = 2 // zxcvbn score, 0 (guessable) to 4
)

var ErrWeakPassword = errors.New("password does not meet policy")

// ValidateNewPassword applies the policy for the password that seals a new wallet.
func ValidateNewPassword(password, confirm string) error {
	if len([]rune(password)) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrWeakPassword, MinPasswordLength)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords don't match", ErrWeakPassword)
	}
	if score := zxcvbn.PasswordStrength(password, nil).Score; score < MinPasswordScore {
		return fmt.Errorf("%w: password is too easy to guess (strength %d/4)", ErrWeakPassword, score)
	}
	return nil
}
