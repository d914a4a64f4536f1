// Package generator builds practice text by sampling words.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// Generator samples words into a practice text.
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

// Sample selects count words uniformly with replacement.
func (g *Generator) Sample(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, words[g.rnd.Intn(len(words))])
	}
	return result
}

// Text joins count sampled words with single spaces.
func (g *Generator) Text(words []string, count int) string {
	return strings.Join(g.Sample(words, count), " ")
}
