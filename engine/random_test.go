package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, uint64(42), ResolveSeed(42))
	assert.NotZero(t, ResolveSeed(0))
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	// Sources derived from one resolved seed differ from each other but replay exactly
	seed := ResolveSeed(0)
	game, stars := NewRand(seed), NewRand(seed+1)
	assert.NotEqual(t, game.Uint64(), stars.Uint64())
	assert.Equal(t, NewRand(seed+1).Uint64(), NewRand(seed+1).Uint64())
}
