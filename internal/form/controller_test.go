package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/passgen/internal/generator"
	"github.com/idilsaglam/passgen/internal/model"
)

// fixedGen records the request and returns a canned password.
type fixedGen struct {
	got   *model.GenerationRequest
	reply string
}

func (g *fixedGen) Generate(req model.GenerationRequest) string {
	g.got = &req
	return g.reply
}

func seeded() Generator {
	return generator.New(generator.NewMathSource(11, 13))
}

func TestSubmitRejectsInvalidLength(t *testing.T) {
	for _, input := range []string{"3", "17", "", "abc"} {
		t.Run(input, func(t *testing.T) {
			gen := &fixedGen{reply: "never"}
			before := model.NewScreenState()
			before.LengthInput = input

			after, err := Submit(before, gen)
			require.Error(t, err)
			assert.Nil(t, gen.got, "generator must not run")
			assert.Equal(t, before.Generated, after.Generated)
			assert.Equal(t, model.Idle, after.Phase)
			assert.True(t, after.LengthTouched)
			assert.Equal(t, MessageOf(err), ShownError(after))
		})
	}
}

func TestSubmitRejectedKeepsPreviousPassword(t *testing.T) {
	s := SetLength(model.NewScreenState(), "8")
	s, err := Submit(s, seeded())
	require.NoError(t, err)
	shown := s.Generated

	s = SetLength(s, "17")
	s, err = Submit(s, seeded())
	require.Error(t, err)
	assert.Equal(t, shown, s.Generated)
	assert.Equal(t, model.Generated, s.Phase)
	assert.Equal(t, MsgMax, ShownError(s))
}

func TestSubmitLowercaseOnly(t *testing.T) {
	s := SetLength(model.NewScreenState(), "8")
	s, err := Submit(s, seeded())
	require.NoError(t, err)

	assert.Equal(t, model.Generated, s.Phase)
	require.Len(t, s.Generated, 8)
	for _, r := range s.Generated {
		assert.True(t, strings.ContainsRune(generator.LowerChars, r), "unexpected %q", r)
	}
	assert.Empty(t, ShownError(s))
}

func TestSubmitPassesTogglesAndLength(t *testing.T) {
	gen := &fixedGen{reply: "Ab3!"}
	s := SetLength(model.NewScreenState(), " 12 ")
	s = Toggle(s, model.Upper)
	s = Toggle(s, model.Symbols)

	s, err := Submit(s, gen)
	require.NoError(t, err)
	require.NotNil(t, gen.got)
	assert.Equal(t, 12, gen.got.Length)
	assert.Equal(t, model.Toggles{Lower: true, Upper: true, Symbols: true}, gen.got.Toggles)
	assert.Equal(t, "Ab3!", s.Generated)
}

func TestSubmitNoClassesGivesEmptyPassword(t *testing.T) {
	s := SetLength(model.NewScreenState(), "8")
	s = Toggle(s, model.Lower)
	s, err := Submit(s, seeded())
	require.NoError(t, err)
	assert.Equal(t, model.Generated, s.Phase)
	assert.Equal(t, "", s.Generated)
}

func TestEditsDoNotClearPassword(t *testing.T) {
	s := SetLength(model.NewScreenState(), "10")
	s, err := Submit(s, seeded())
	require.NoError(t, err)
	shown := s.Generated

	s = SetLength(s, "abc")
	s = Toggle(s, model.Digits)
	assert.Equal(t, shown, s.Generated)
	assert.Equal(t, model.Generated, s.Phase)
}

func TestReset(t *testing.T) {
	s := SetLength(model.NewScreenState(), "8")
	s = Toggle(s, model.Upper)
	s = Toggle(s, model.Digits)
	s = Toggle(s, model.Lower)
	s = ToggleDarkMode(s)
	s, err := Submit(s, seeded())
	require.NoError(t, err)

	s = Reset(s)
	assert.Equal(t, model.Idle, s.Phase)
	assert.Empty(t, s.Generated)
	assert.Empty(t, s.LengthInput)
	assert.Empty(t, ShownError(s))
	assert.Equal(t, model.Toggles{Lower: true}, s.Toggles)
	assert.True(t, s.DarkMode, "theme is not part of the form")
}

func TestToggleDarkModeIsOrthogonal(t *testing.T) {
	s := SetLength(model.NewScreenState(), "9")
	s = Toggle(s, model.Symbols)
	s, err := Submit(s, seeded())
	require.NoError(t, err)

	flipped := ToggleDarkMode(s)
	assert.True(t, flipped.DarkMode)
	assert.Equal(t, s.LengthInput, flipped.LengthInput)
	assert.Equal(t, s.Toggles, flipped.Toggles)
	assert.Equal(t, s.Generated, flipped.Generated)
	assert.Equal(t, s.Phase, flipped.Phase)

	assert.Equal(t, s, ToggleDarkMode(flipped))
}

func TestCanSubmit(t *testing.T) {
	s := model.NewScreenState()
	assert.True(t, CanSubmit(s), "nothing validated yet")
	assert.Empty(t, ShownError(s), "untouched field shows no error")

	s, err := Submit(s, seeded())
	require.Error(t, err)
	assert.False(t, CanSubmit(s))
	assert.Equal(t, MsgRequired, ShownError(s))

	s = SetLength(s, "2")
	assert.False(t, CanSubmit(s))
	assert.Equal(t, MsgMin, ShownError(s))

	s = SetLength(s, "6")
	assert.True(t, CanSubmit(s))
	assert.Empty(t, ShownError(s))
}
