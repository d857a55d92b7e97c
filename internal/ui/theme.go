package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the palette and glyphs for one appearance.
// Renderers pull from Current() or ThemeFor(dark).
type Theme struct {
	Name string
	Dark bool

	App         lipgloss.Style // whole screen
	Form        lipgloss.Style // box around the inputs
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Row         lipgloss.Style
	RowFocused  lipgloss.Style
	Input       lipgloss.Style
	Error       lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Check       lipgloss.Style
	Primary     lipgloss.Style
	PrimaryOff  lipgloss.Style // Generate while the form is invalid
	Secondary   lipgloss.Style
	ButtonFocus lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Password    lipgloss.Style

	BoxChecked, BoxUnchecked string
	SymOK, SymFail           string
}

const (
	checkFill   = lipgloss.Color("#29AB87")
	description = lipgloss.Color("#758283")
)

func light() Theme {
	return Theme{
		Name:        "light",
		App:         lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")).Padding(1, 2),
		Form:        lipgloss.NewStyle().Background(lipgloss.Color("#f5f5f5")).Padding(1, 1),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).MarginBottom(1),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")),
		Row:         lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")).Padding(0, 1).Width(40),
		RowFocused:  lipgloss.NewStyle().Background(lipgloss.Color("#FFFFFF")).Padding(0, 1).Width(40).Bold(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#16213e")).Foreground(lipgloss.Color("#000000")).Padding(0, 1),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0d10")),
		Muted:       lipgloss.NewStyle().Foreground(description),
		Success:     lipgloss.NewStyle().Foreground(checkFill),
		Check:       lipgloss.NewStyle().Foreground(checkFill).Bold(true),
		Primary:     lipgloss.NewStyle().Background(lipgloss.Color("#5DA3FA")).Foreground(lipgloss.Color("#000000")).Bold(true).Padding(0, 2),
		PrimaryOff:  lipgloss.NewStyle().Background(lipgloss.Color("#CAD5E2")).Foreground(description).Padding(0, 2),
		Secondary:   lipgloss.NewStyle().Background(lipgloss.Color("#CAD5E2")).Foreground(lipgloss.Color("#000000")).Padding(0, 2),
		ButtonFocus: lipgloss.NewStyle().Underline(true),
		Card:        lipgloss.NewStyle().Background(lipgloss.Color("#ffffff")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#333333")).Padding(0, 2).MarginTop(1),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")),
		Password:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")),

		BoxChecked: "☑", BoxUnchecked: "☐",
		SymOK: "✔", SymFail: "✖",
	}
}

func dark() Theme {
	t := light()
	t.Name = "dark"
	t.Dark = true
	t.App = t.App.Background(lipgloss.Color("#121212"))
	t.Form = t.Form.Background(lipgloss.Color("#1e1e1e"))
	t.Title = t.Title.Foreground(lipgloss.Color("#ffffff"))
	t.Heading = t.Heading.Foreground(lipgloss.Color("#ffffff"))
	t.Row = t.Row.Background(lipgloss.Color("#2e2e2e"))
	t.RowFocused = t.RowFocused.Background(lipgloss.Color("#2e2e2e"))
	t.Input = t.Input.BorderForeground(lipgloss.Color("#b0b0b0")).Foreground(lipgloss.Color("#ffffff"))
	t.Error = t.Error.Foreground(lipgloss.Color("#ff8080"))
	t.Primary = t.Primary.Background(lipgloss.Color("#4A90E2")).Foreground(lipgloss.Color("#ffffff"))
	t.PrimaryOff = t.PrimaryOff.Background(lipgloss.Color("#3b3b3b"))
	t.Secondary = t.Secondary.Background(lipgloss.Color("#3b3b3b")).Foreground(lipgloss.Color("#ffffff"))
	// the result card stays white in both modes
	return t
}

var current = light()

// ThemeFor returns the dark or light theme.
func ThemeFor(darkMode bool) Theme {
	if darkMode {
		return dark()
	}
	return light()
}

// SetTheme switches the theme used by the CLI helpers.
func SetTheme(darkMode bool) { current = ThemeFor(darkMode) }

// Current returns the theme used by the CLI helpers.
func Current() Theme { return current }
