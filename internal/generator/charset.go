// Package generator assembles candidate alphabets from character classes and
// draws random passwords from them.
package generator

import (
	"strings"

	"github.com/idilsaglam/passgen/internal/model"
)

// Character pools, one per class.
const (
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars  = "0123456789"
	SymbolChars = "!@#$%^&*()_+"
)

// Pool returns the characters for class c.
func Pool(c model.Class) string {
	switch c {
	case model.Lower:
		return LowerChars
	case model.Upper:
		return UpperChars
	case model.Digits:
		return DigitChars
	case model.Symbols:
		return SymbolChars
	}
	return ""
}

// Build concatenates the pools of every enabled class, always in
// lower, upper, digits, symbols order. No class enabled gives "".
func Build(t model.Toggles) string {
	var sb strings.Builder
	for _, c := range model.Classes {
		if t.Enabled(c) {
			sb.WriteString(Pool(c))
		}
	}
	return sb.String()
}
