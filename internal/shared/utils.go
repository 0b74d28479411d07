// Package shared provides helpers for generating random identifiers:
// transaction keys and throwaway pseudonyms.
package shared

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// UsernameAlphabet is the fixed alphabet used for generated pseudonyms.
// Low entropy is acceptable here: a username is a throwaway label, not a
// security property.
const UsernameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// UsernameLength is the length of generated pseudonyms.
const UsernameLength = 8

// MakeRandHexString generates a random hexadecimal string of the given size.
// The size parameter is the number of random bytes, so the resulting string
// is twice as long. It returns an error if the random number generator fails.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateUsername returns a random pseudonym of UsernameLength characters
// drawn from UsernameAlphabet.
func GenerateUsername() (string, error) {
	max := big.NewInt(int64(len(UsernameAlphabet)))
	b := make([]byte, UsernameLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = UsernameAlphabet[n.Int64()]
	}
	return string(b), nil
}
