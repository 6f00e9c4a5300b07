// Package styles provides the lipgloss styles used by mindflow command output.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#bb9af7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#d3869b"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Style exports.
var (
	DayHeaderStyle lipgloss.Style
	ItemTextStyle  lipgloss.Style
	ItemIDStyle    lipgloss.Style
	TagStyle       lipgloss.Style
	DueStyle       lipgloss.Style
	DoneStyle      lipgloss.Style
	LabelStyle     lipgloss.Style
	CountStyle     lipgloss.Style
	DividerStyle   lipgloss.Style

	// Check status markers.
	PassStyle lipgloss.Style
	WarnStyle lipgloss.Style
	FailStyle lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	DayHeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	ItemTextStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	ItemIDStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TagStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)
	DueStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
	DoneStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Strikethrough(true)
	LabelStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Width(10)
	CountStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	PassStyle = lipgloss.NewStyle().Foreground(p.Success)
	WarnStyle = lipgloss.NewStyle().Foreground(p.Warning)
	FailStyle = lipgloss.NewStyle().Foreground(p.Error)
}
