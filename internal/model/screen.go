package model

// Phase says whether a password is currently on screen.
type Phase int

const (
	Idle Phase = iota
	Generated
)

func (p Phase) String() string {
	if p == Generated {
		return "generated"
	}
	return "idle"
}

// ScreenState is everything the password screen shows.
// Values are replaced wholesale by the form transitions, never mutated in place.
type ScreenState struct {
	LengthInput   string
	LengthTouched bool   // field edited or submit attempted
	LengthError   string // last validation message for LengthInput, "" when valid

	Toggles   Toggles
	Generated string
	Phase     Phase

	DarkMode bool
}

// NewScreenState returns the state the screen mounts with.
func NewScreenState() ScreenState {
	return ScreenState{
		Toggles: DefaultToggles(),
		Phase:   Idle,
	}
}
