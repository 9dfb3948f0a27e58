package engine

import (
	"math/rand"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/game"
)

// NewRand returns a seeded random source for a combat session.
// *rand.Rand satisfies game.Rand directly; tests substitute a scripted
// implementation instead.
func NewRand(seed int64) game.Rand {
	return rand.New(rand.NewSource(seed))
}
