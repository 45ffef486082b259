package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// RandomHex returns n cryptographically random bytes, hex encoded. The
// resulting string is 2n characters long.
func RandomHex(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("byte length must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GeneratePaymentID produces a payment identifier of the form
// "zkt<year>-<9 random hex chars>", unique per payment attempt.
func GeneratePaymentID(t time.Time) (string, error) {
	suffix, err := RandomHex(5)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("zkt%d-%s", t.Year(), suffix[:9]), nil
}

// GenerateInvestmentReference produces a ledger reference of the form
// "INV-<unix millis>-<4 random hex chars>".
func GenerateInvestmentReference(t time.Time) (string, error) {
	suffix, err := RandomHex(2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%s", t.UnixMilli(), suffix), nil
}
