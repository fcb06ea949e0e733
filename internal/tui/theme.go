package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Amber       = lipgloss.Color("#FFB000")
	DimAmber    = lipgloss.Color("#5C3D00")
	Black       = lipgloss.Color("#0D0208")
	MidGray     = lipgloss.Color("#3a3a4e")
	White       = lipgloss.Color("#e0e0e0")
	Red         = lipgloss.Color("#FF4136")
)

// Theme is the accent pair every style is derived from.
type Theme struct {
	Accent lipgloss.Color
	Dim    lipgloss.Color
}

var themes = map[string]Theme{
	"green": {Accent: Green, Dim: DimGreen},
	"amber": {Accent: Amber, Dim: DimAmber},
}

// ThemeNamed returns the named theme, falling back to green.
func ThemeNamed(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["green"]
}

// Styles groups the lipgloss styles the UI renders with.
type Styles struct {
	Title      lipgloss.Style
	StatusBar  lipgloss.Style
	Prompt     lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	Box        lipgloss.Style
	InputBox   lipgloss.Style
	MenuCursor lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		StatusBar: lipgloss.NewStyle().
			Background(t.Accent).
			Foreground(Black).
			Bold(true).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(t.Accent),
		Error: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(MidGray),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGreen).
			Padding(0, 1),
		MenuCursor: lipgloss.NewStyle().
			Foreground(t.Accent).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Accent).
			PaddingLeft(1),
	}
}
