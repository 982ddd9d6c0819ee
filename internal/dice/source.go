package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source supplies the uniform random values behind die rolls.
// *math/rand.Rand satisfies it; tests substitute a fixed sequence.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// NewSeededSource returns a deterministic Source. Rolling the same
// expression against sources built from the same seed always yields
// the same results.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// RandomSeed generates a roll seed using crypto/rand. Callers that
// want replayable rolls surface this seed to the user instead of
// hiding it inside a global generator.
func RandomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
