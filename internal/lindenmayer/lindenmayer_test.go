package lindenmayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// terdragonSystem is the terdragon rewrite over a rune alphabet {F, L, R}:
// F -> F L F R F, with L and R fixed points.
type terdragonSystem struct{}

func (terdragonSystem) Initial() []rune { return []rune{'F'} }

func (terdragonSystem) ApplyRule(sym rune) []rune {
	if sym == 'F' {
		return []rune{'F', 'L', 'F', 'R', 'F'}
	}
	return []rune{sym}
}

func TestGenerateZeroIsInitial(t *testing.T) {
	sys := terdragonSystem{}
	assert.Equal(t, sys.Initial(), Generate[rune](sys, 0))
}

func TestTerdragonExpansion(t *testing.T) {
	sys := terdragonSystem{}

	assert.Equal(t, []rune("FLFRF"), Generate[rune](sys, 1))
	assert.Equal(t, []rune("FLFRFLFLFRFRFLFRF"), Generate[rune](sys, 2))
}

func TestGenerateStepProperty(t *testing.T) {
	// generate(k+1) == concat(applyRule(s) for s in generate(k))
	sys := terdragonSystem{}
	for k := uint(0); k < 5; k++ {
		var want []rune
		for _, sym := range Generate[rune](sys, k) {
			want = append(want, sys.ApplyRule(sym)...)
		}
		assert.Equal(t, want, Generate[rune](sys, k+1), "iteration %d", k)
	}
}

func TestGenerateSymbolCountGrowth(t *testing.T) {
	// Terdragon has 3^N forward symbols; total length is then 3^N plus the
	// interleaved turns.
	sys := terdragonSystem{}
	for n, wantForward := range map[uint]int{0: 1, 1: 3, 2: 9, 3: 27} {
		forward := 0
		for _, sym := range Generate[rune](sys, n) {
			if sym == 'F' {
				forward++
			}
		}
		assert.Equal(t, wantForward, forward, "iteration %d", n)
	}
}
