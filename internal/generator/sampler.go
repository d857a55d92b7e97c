package generator

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/idilsaglam/passgen/internal/model"
)

// Sample draws length characters from alphabet, each independently and
// uniformly. An empty alphabet or a non-positive length gives "".
func Sample(src Source, alphabet string, length int) string {
	if alphabet == "" || length <= 0 {
		return ""
	}
	runes := []rune(alphabet)
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteRune(runes[src.Intn(len(runes))])
	}
	return sb.String()
}

// Generator ties a Source to the build+sample pipeline.
type Generator struct {
	src Source
}

// New returns a Generator drawing from src.
func New(src Source) *Generator {
	return &Generator{src: src}
}

// Generate builds the alphabet for req.Toggles and samples req.Length characters.
func (g *Generator) Generate(req model.GenerationRequest) string {
	return Sample(g.src, Build(req.Toggles), req.Length)
}

// Entropy is the strength in bits of a length-character password drawn
// uniformly from alphabet. Pools never share characters, so the rune count
// is the size.
func Entropy(alphabet string, length int) float64 {
	n := utf8.RuneCountInString(alphabet)
	if n < 2 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(n))
}
