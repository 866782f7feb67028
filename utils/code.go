package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateResetCode returns a random 6-digit numeric code for the
// password-reset email, zero-padded so "004217" round-trips intact.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
