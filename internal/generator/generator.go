// Package generator chooses which word falls next and where.
package generator

import (
	"math/rand"
	"time"
)

// Generator produces randomized spawn choices.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// PickWord selects a word with probability proportional to its weight.
// Non-positive weights never win unless every weight is non-positive, in
// which case the choice is uniform.
func (g *Generator) PickWord(words []string, weight func(string) float64) string {
	if len(words) == 0 {
		return ""
	}
	weights := make([]float64, len(words))
	total := 0.0
	for i, word := range words {
		w := weight(word)
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return words[g.rnd.Intn(len(words))]
	}

	r := g.rnd.Float64() * total
	acc := 0.0
	idx := len(words) - 1
	for j, w := range weights {
		if w == 0 {
			continue
		}
		acc += w
		if r < acc {
			idx = j
			break
		}
	}
	return words[idx]
}

// PickColumn returns a start column in [0, maxCol] chosen uniformly among
// the columns for which taken reports false. When every column is taken
// any column may be returned.
func (g *Generator) PickColumn(maxCol int, taken func(int) bool) int {
	if maxCol <= 0 {
		return 0
	}
	free := make([]int, 0, maxCol+1)
	for col := 0; col <= maxCol; col++ {
		if !taken(col) {
			free = append(free, col)
		}
	}
	if len(free) == 0 {
		return g.rnd.Intn(maxCol + 1)
	}
	return free[g.rnd.Intn(len(free))]
}
