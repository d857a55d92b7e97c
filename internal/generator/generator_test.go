package generator

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/passgen/internal/model"
)

func TestBuildAllCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		tg := model.Toggles{
			Lower:   mask&1 != 0,
			Upper:   mask&2 != 0,
			Digits:  mask&4 != 0,
			Symbols: mask&8 != 0,
		}
		want := ""
		if tg.Lower {
			want += LowerChars
		}
		if tg.Upper {
			want += UpperChars
		}
		if tg.Digits {
			want += DigitChars
		}
		if tg.Symbols {
			want += SymbolChars
		}
		assert.Equal(t, want, Build(tg), "toggles %+v", tg)
	}
}

func TestBuildNoneIsEmpty(t *testing.T) {
	assert.Equal(t, "", Build(model.Toggles{}))
}

func TestBuildOrderIgnoresFlipOrder(t *testing.T) {
	var tg model.Toggles
	tg = tg.Flip(model.Symbols).Flip(model.Lower).Flip(model.Upper)
	assert.Equal(t, LowerChars+UpperChars+SymbolChars, Build(tg))
}

func TestSampleMembershipAndLength(t *testing.T) {
	src := NewMathSource(1, 2)
	alphabets := []string{
		LowerChars,
		DigitChars,
		SymbolChars,
		Build(model.Toggles{Lower: true, Upper: true, Digits: true, Symbols: true}),
		"x",
	}
	for _, alphabet := range alphabets {
		for length := 4; length <= 16; length++ {
			got := Sample(src, alphabet, length)
			require.Len(t, got, length)
			for _, r := range got {
				assert.True(t, strings.ContainsRune(alphabet, r), "%q not in %q", r, alphabet)
			}
		}
	}
}

func TestSampleEmptyAlphabet(t *testing.T) {
	called := false
	src := SourceFunc(func(n int) int { called = true; return 0 })
	for _, length := range []int{0, 1, 8, 16, 100} {
		assert.Equal(t, "", Sample(src, "", length))
	}
	assert.False(t, called, "source must not be consulted for an empty alphabet")
}

func TestSampleNonPositiveLength(t *testing.T) {
	src := NewMathSource(3, 4)
	assert.Equal(t, "", Sample(src, LowerChars, 0))
	assert.Equal(t, "", Sample(src, LowerChars, -5))
}

func TestSampleUsesSource(t *testing.T) {
	// walk the alphabet in order, wrapping
	i := 0
	src := SourceFunc(func(n int) int {
		v := i % n
		i++
		return v
	})
	assert.Equal(t, "abcab", Sample(src, "abc", 5))
}

func TestSampleLastIndexReachable(t *testing.T) {
	src := SourceFunc(func(n int) int { return n - 1 })
	assert.Equal(t, "++++", Sample(src, SymbolChars, 4))
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := Sample(NewMathSource(42, 7), LowerChars+DigitChars, 16)
	b := Sample(NewMathSource(42, 7), LowerChars+DigitChars, 16)
	assert.Equal(t, a, b)
}

func TestCryptoSourceRange(t *testing.T) {
	var src CryptoSource
	for i := 0; i < 200; i++ {
		v := src.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr bool
	}{
		{kind: ""},
		{kind: "math"},
		{kind: " Crypto "},
		{kind: "dice", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			src, err := NewSource(tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, src)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, src)
		})
	}
}

func TestGeneratorGenerate(t *testing.T) {
	g := New(NewMathSource(9, 9))
	got := g.Generate(model.GenerationRequest{Length: 8, Toggles: model.Toggles{Digits: true}})
	require.Len(t, got, 8)
	for _, r := range got {
		assert.True(t, r >= '0' && r <= '9', "unexpected %q", r)
	}
	assert.Equal(t, "", g.Generate(model.GenerationRequest{Length: 8}))
}

func TestEntropy(t *testing.T) {
	assert.InDelta(t, 8*math.Log2(26), Entropy(LowerChars, 8), 1e-9)
	assert.InDelta(t, 16.0, Entropy("0123456789ABCDEF", 4), 1e-9)
	assert.Zero(t, Entropy("", 8))
	assert.Zero(t, Entropy("a", 8))
	assert.Zero(t, Entropy(LowerChars, 0))
	assert.InDelta(t, 4*math.Log2(3), Entropy("äöü", 4), 1e-9)
}

func TestSampleMultiByteAlphabet(t *testing.T) {
	const alphabet = "äöü"
	got := Sample(NewMathSource(1, 1), alphabet, 8)
	require.True(t, utf8.ValidString(got), "got %q", got)
	assert.Equal(t, 8, utf8.RuneCountInString(got))
	for _, r := range got {
		assert.True(t, strings.ContainsRune(alphabet, r), "rune %q not in alphabet", r)
	}
}
