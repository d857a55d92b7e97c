package model

// Class names one character pool. The order of the constants is the order
// pools are concatenated in.
type Class int

const (
	Lower Class = iota
	Upper
	Digits
	Symbols
)

// Classes lists every class in alphabet order.
var Classes = []Class{Lower, Upper, Digits, Symbols}

func (c Class) String() string {
	switch c {
	case Lower:
		return "lowercase"
	case Upper:
		return "uppercase"
	case Digits:
		return "numbers"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// Toggles holds one include-flag per character class.
type Toggles struct {
	Lower   bool `json:"lower"`
	Upper   bool `json:"upper"`
	Digits  bool `json:"digits"`
	Symbols bool `json:"symbols"`
}

// DefaultToggles is what the screen mounts with and what reset restores.
func DefaultToggles() Toggles {
	return Toggles{Lower: true}
}

// Enabled reports whether class c is switched on.
func (t Toggles) Enabled(c Class) bool {
	switch c {
	case Lower:
		return t.Lower
	case Upper:
		return t.Upper
	case Digits:
		return t.Digits
	case Symbols:
		return t.Symbols
	}
	return false
}

// Flip returns a copy of t with class c inverted.
func (t Toggles) Flip(c Class) Toggles {
	switch c {
	case Lower:
		t.Lower = !t.Lower
	case Upper:
		t.Upper = !t.Upper
	case Digits:
		t.Digits = !t.Digits
	case Symbols:
		t.Symbols = !t.Symbols
	}
	return t
}

// Any reports whether at least one class is on.
func (t Toggles) Any() bool {
	return t.Lower || t.Upper || t.Digits || t.Symbols
}

// GenerationRequest is a validated ask for one password.
type GenerationRequest struct {
	Length  int     `json:"length"`
	Toggles Toggles `json:"toggles"`
}
