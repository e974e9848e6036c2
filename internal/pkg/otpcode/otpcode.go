// Package otpcode generates one-time passcodes for email verification flows.
package otpcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator produces one-time passcodes.
type Generator interface {
	Generate() (string, error)
}

// SixDigit generates uniformly distributed 6-digit numeric codes.
type SixDigit struct{}

// NewSixDigit returns a 6-digit code generator.
func NewSixDigit() *SixDigit {
	return &SixDigit{}
}

// Generate returns a code in [100000, 999999] using crypto/rand.
func (g *SixDigit) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("otpcode: generate: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
