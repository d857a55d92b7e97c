package form

import (
	"github.com/idilsaglam/passgen/internal/model"
)

// Generator turns a validated request into a password.
type Generator interface {
	Generate(req model.GenerationRequest) string
}

// SetLength records new length text. The shown password is left alone.
func SetLength(s model.ScreenState, text string) model.ScreenState {
	s.LengthInput = text
	s.LengthTouched = true
	s.LengthError = MessageOf(validateOnly(text))
	return s
}

// Toggle flips one character class. The shown password is left alone.
func Toggle(s model.ScreenState, c model.Class) model.ScreenState {
	s.Toggles = s.Toggles.Flip(c)
	return s
}

// ToggleDarkMode flips the theme and nothing else.
func ToggleDarkMode(s model.ScreenState) model.ScreenState {
	s.DarkMode = !s.DarkMode
	return s
}

// Submit validates the length and, when it passes, generates a password from
// the current toggles. On rejection the returned state only differs from s in
// its length error bookkeeping, and the error is a *ValidationError.
func Submit(s model.ScreenState, gen Generator) (model.ScreenState, error) {
	n, err := ValidateLength(s.LengthInput)
	if err != nil {
		s.LengthTouched = true
		s.LengthError = MessageOf(err)
		return s, err
	}
	s.LengthError = ""
	s.Generated = gen.Generate(model.GenerationRequest{Length: n, Toggles: s.Toggles})
	s.Phase = model.Generated
	return s, nil
}

// Reset clears the password, the length field and the toggles. Theme survives.
func Reset(s model.ScreenState) model.ScreenState {
	fresh := model.NewScreenState()
	fresh.DarkMode = s.DarkMode
	return fresh
}

// CanSubmit reports whether the Generate action is enabled. Like a form
// library's isValid it only knows about validations that already ran, so a
// pristine form can be submitted once to surface the "required" message.
func CanSubmit(s model.ScreenState) bool {
	return s.LengthError == ""
}

// ShownError is the text for under the length field.
func ShownError(s model.ScreenState) string {
	if !s.LengthTouched {
		return ""
	}
	return s.LengthError
}

func validateOnly(text string) error {
	_, err := ValidateLength(text)
	return err
}
