package random

import (
	"crypto/rand"
	"math/big"
)

// Base36 is the lowercase alphanumeric alphabet used for identifiers
const Base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// Random is the source of randomness for ID suffixes, mockable in tests
type Random interface {
	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// CryptoRandom draws from crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// String generates a random string of the given length from the given alphabet.
// Each character is drawn uniformly; a failed read yields the first character.
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	size := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			result[i] = alphabet[0]
			continue
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result)
}
