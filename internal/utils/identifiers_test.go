package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomHex(t *testing.T) {
	s, err := RandomHex(32)
	assert.NoError(t, err)
	assert.Len(t, s, 64, "32 bytes should hex encode to 64 characters")

	other, err := RandomHex(32)
	assert.NoError(t, err)
	assert.NotEqual(t, s, other, "Consecutive values should not collide")

	_, err = RandomHex(0)
	assert.Error(t, err, "Zero byte length should be rejected")
}

func TestGeneratePaymentID(t *testing.T) {
	at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	id, err := GeneratePaymentID(at)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "zkt2026-"), "Payment ID should carry the year prefix")
	assert.Len(t, id, len("zkt2026-")+9, "Suffix should be 9 hex characters")
}

func TestGenerateInvestmentReference(t *testing.T) {
	at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	ref, err := GenerateInvestmentReference(at)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "INV-"), "Reference should carry the INV prefix")
	parts := strings.Split(ref, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 4, "Random suffix should be 4 hex characters")
}
