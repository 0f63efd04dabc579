package random

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}

// String generates a random string of the given length from the given alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

// SeededRandom is a reproducible Random derived from a string seed.
// Two instances built from the same seed produce the same sequence.
type SeededRandom struct {
	rng *mrand.Rand
}

// NewSeeded creates a SeededRandom whose sequence is fixed by seed
func NewSeeded(seed string) *SeededRandom {
	sum := blake2b.Sum256([]byte(seed))
	pcg := mrand.NewPCG(binary.BigEndian.Uint64(sum[0:8]), binary.BigEndian.Uint64(sum[8:16]))
	return &SeededRandom{rng: mrand.New(pcg)}
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// String generates a pseudo-random string of the given length from the given alphabet
func (r *SeededRandom) String(length int, alphabet string) string {
	return randomString(r, length, alphabet)
}

// Shuffle permutes n elements in place using Fisher-Yates, drawing from rnd.
// swap exchanges the elements at the given indexes.
func Shuffle(rnd Random, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		if i != j {
			swap(i, j)
		}
	}
}

func randomString(rnd Random, length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(result)
}
