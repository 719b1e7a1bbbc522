package services

import (
	"crypto/rand"
	"math/big"
)

const OTPLength = 6

// GenerateOTP returns a random 6-digit numeric code
func GenerateOTP() (string, error) {
	digits := make([]byte, OTPLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
