// Package tui renders the password screen with Bubble Tea and forwards every
// user event into the form transitions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/idilsaglam/passgen/internal/clip"
	"github.com/idilsaglam/passgen/internal/form"
	"github.com/idilsaglam/passgen/internal/generator"
	"github.com/idilsaglam/passgen/internal/model"
	"github.com/idilsaglam/passgen/internal/ui"
)

// focus ring, in screen order
type focus int

const (
	focusLength focus = iota
	focusLower
	focusUpper
	focusDigits
	focusSymbols
	focusGenerate
	focusReset
	focusCount
)

// class returns the character class behind a checkbox row.
func (f focus) class() (model.Class, bool) {
	if f < focusLower || f > focusSymbols {
		return 0, false
	}
	return model.Classes[f-focusLower], true
}

var classLabels = map[model.Class]string{
	model.Lower:   "Include Lowercase",
	model.Upper:   "Include Uppercase",
	model.Digits:  "Include Numbers",
	model.Symbols: "Include Symbols",
}

// Options configures New. A nil Logger means zap.NewNop.
type Options struct {
	Generator form.Generator
	Clipboard clip.Writer
	Logger    *zap.Logger
	DarkMode  bool
}

// Model is the Bubble Tea model for the screen.
type Model struct {
	state model.ScreenState
	gen   form.Generator
	clip  clip.Writer
	log   *zap.Logger

	input textinput.Model
	focus focus
	keys  keyMap
	help  help.Model

	genAlphabet string // alphabet the shown password came from
	status      string // transient line under the result
	statusErr   bool
}

// New mounts the screen with default state.
func New(opt Options) Model {
	if opt.Generator == nil {
		opt.Generator = generator.New(generator.NewRandomMathSource())
	}
	if opt.Clipboard == nil {
		opt.Clipboard = clip.System{}
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}

	st := model.NewScreenState()
	st.DarkMode = opt.DarkMode

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Ex. 8"
	ti.CharLimit = 4
	ti.Width = 5
	ti.Focus()

	return Model{
		state: st,
		gen:   opt.Generator,
		clip:  opt.Clipboard,
		log:   opt.Logger,
		input: ti,
		focus: focusLength,
		keys:  defaultKeys(),
		help:  help.New(),
	}
}

// State exposes the current screen state.
func (m Model) State() model.ScreenState { return m.state }

// Run starts the program and returns the model it quit with.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	m.log.Info("screen started", zap.Bool("dark_mode", m.state.DarkMode))
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, errors.Wrap(err, "run screen")
	}
	fm, ok := final.(Model)
	if !ok {
		return m, nil
	}
	return fm, nil
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m.state = form.ToggleDarkMode(m.state)
			m.log.Info("theme toggled", zap.Bool("dark_mode", m.state.DarkMode))
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyPassword()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		}

		// length field swallows everything but enter
		if m.focus == focusLength {
			if msg.Type == tea.KeyEnter {
				m.submit()
				return m, nil
			}
			return m.updateInput(msg)
		}

		if key.Matches(msg, m.keys.Press) {
			m.press()
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.state = form.SetLength(m.state, v)
	}
	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.focus = (m.focus + focus(delta) + focusCount) % focusCount
	if m.focus == focusLength {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// press activates the focused checkbox or button.
func (m *Model) press() {
	if c, ok := m.focus.class(); ok {
		m.state = form.Toggle(m.state, c)
		return
	}
	switch m.focus {
	case focusGenerate:
		if form.CanSubmit(m.state) {
			m.submit()
		}
	case focusReset:
		m.reset()
	}
}

func (m *Model) submit() {
	st, err := form.Submit(m.state, m.gen)
	m.state = st
	if err != nil {
		m.log.Debug("submit rejected", zap.String("reason", form.MessageOf(err)))
		return
	}
	alphabet := generator.Build(st.Toggles)
	m.genAlphabet = alphabet
	m.status, m.statusErr = "", false
	m.log.Info("password generated",
		zap.Int("length", len(st.Generated)),
		zap.Int("alphabet_size", len(alphabet)),
		zap.Float64("entropy_bits", generator.Entropy(alphabet, len(st.Generated))),
	)
}

func (m *Model) reset() {
	m.state = form.Reset(m.state)
	m.input.Reset()
	m.genAlphabet = ""
	m.status, m.statusErr = "", false
	m.log.Info("form reset")
}

func (m *Model) copyPassword() {
	if m.state.Phase != model.Generated {
		return
	}
	if err := m.clip.WriteAll(m.state.Generated); err != nil {
		m.status, m.statusErr = "copy failed: "+err.Error(), true
		m.log.Error("copy failed", zap.Error(err))
		return
	}
	m.status, m.statusErr = "copied to clipboard", false
	m.log.Info("password copied")
}

func (m Model) View() string {
	t := ui.ThemeFor(m.state.DarkMode)

	var b strings.Builder
	b.WriteString(t.Title.Render("Password Generator"))
	b.WriteString("\n")
	mode := "light"
	if m.state.DarkMode {
		mode = "dark"
	}
	b.WriteString(t.Muted.Render(fmt.Sprintf("ctrl+t: toggle dark mode (%s)", mode)))
	b.WriteString("\n\n")
	b.WriteString(t.Form.Render(m.formView(t)))

	if m.state.Phase == model.Generated {
		b.WriteString("\n")
		b.WriteString(m.resultView(t))
	}
	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(t.Error.Render(t.SymFail + " " + m.status))
		} else {
			b.WriteString(t.Success.Render(t.SymOK + " " + m.status))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return t.App.Render(b.String())
}

// helpers for View

func (m Model) prefix(f focus) string {
	if m.focus == f {
		return "> "
	}
	return "  "
}

func (m Model) row(t ui.Theme, f focus, content string) string {
	style := t.Row
	if m.focus == f {
		style = t.RowFocused
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Center, m.prefix(f), content))
}

func (m Model) formView(t ui.Theme) string {
	var rows []string

	length := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Heading.Render(fmt.Sprintf("%-20s", "Password Length")),
		t.Input.Render(m.input.View()),
	)
	rows = append(rows, m.row(t, focusLength, length))
	rows = append(rows, "  "+t.Error.Render(form.ShownError(m.state)))

	for _, c := range model.Classes {
		box := t.Muted.Render(t.BoxUnchecked)
		if m.state.Toggles.Enabled(c) {
			box = t.Check.Render(t.BoxChecked)
		}
		f := focusLower + focus(c)
		rows = append(rows, m.row(t, f, t.Heading.Render(fmt.Sprintf("%-20s", classLabels[c]))+" "+box))
	}

	gen := t.Primary
	if !form.CanSubmit(m.state) {
		gen = t.PrimaryOff
	}
	if m.focus == focusGenerate {
		gen = gen.Inherit(t.ButtonFocus)
	}
	reset := t.Secondary
	if m.focus == focusReset {
		reset = reset.Inherit(t.ButtonFocus)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.prefix(focusGenerate)+gen.Render("Generate Password"),
		"  ",
		m.prefix(focusReset)+reset.Render("Reset"),
	)
	rows = append(rows, "", buttons)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) resultView(t ui.Theme) string {
	pw := m.state.Generated
	lines := []string{
		t.CardTitle.Render("Result:"),
		t.Muted.Render("Press ctrl+y to copy"),
		t.Password.Render(pw),
		t.Muted.Render(ui.StrengthBar(generator.Entropy(m.genAlphabet, len(pw)), ui.StrengthScale, 20)),
	}
	if pw == "" {
		lines[2] = t.Error.Render("no character classes selected")
	}
	return t.Card.Render(strings.Join(lines, "\n"))
}
