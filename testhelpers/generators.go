package testhelpers

import (
	"fmt"
	"math/rand"
	"time"
)

// Test helpers for generating random job names and values, used by the
// extjob and joblist tests.

// NewRand returns a rand seeded with the current time.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Generates an AlphaNumericString of random length (0, 21]
func GenRandomAlphaNumericString(rng *rand.Rand) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	length := rng.Intn(20) + 1
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = chars[rng.Intn(len(chars))]
	}

	return string(result)
}

// Generates a valid random job name
func GenJobName(rng *rand.Rand) string {
	return fmt.Sprintf("job:%s", GenRandomAlphaNumericString(rng))
}
