package generator

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"strings"

	"github.com/cockroachdb/errors"
)

// Source yields uniform integers in [0, n). n is always > 0.
type Source interface {
	Intn(n int) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(n int) int

// Intn calls f(n).
func (f SourceFunc) Intn(n int) int { return f(n) }

// MathSource draws from math/rand/v2. Not suitable for secrets that matter.
type MathSource struct {
	r *mrand.Rand
}

// NewMathSource seeds a PCG generator. Same seeds, same sequence.
func NewMathSource(seed1, seed2 uint64) *MathSource {
	return &MathSource{r: mrand.New(mrand.NewPCG(seed1, seed2))}
}

// NewRandomMathSource seeds from the runtime's global generator.
func NewRandomMathSource() *MathSource {
	return NewMathSource(mrand.Uint64(), mrand.Uint64())
}

// Intn returns a uniform int in [0, n) from the PCG stream.
func (s *MathSource) Intn(n int) int { return s.r.IntN(n) }

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// Intn returns a uniform int in [0, n) read from crypto/rand.
// It panics if the system random reader fails.
func (CryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(errors.Wrap(err, "crypto/rand"))
	}
	return int(v.Int64())
}

// Source kinds accepted by NewSource.
const (
	SourceMath   = "math"
	SourceCrypto = "crypto"
)

// NewSource picks a Source by name.
func NewSource(kind string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", SourceMath:
		return NewRandomMathSource(), nil
	case SourceCrypto:
		return CryptoSource{}, nil
	}
	return nil, errors.Newf("unknown random source %q (want %s or %s)", kind, SourceMath, SourceCrypto)
}
