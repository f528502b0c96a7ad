package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

type ThemeName string

const (
	ThemePorcelain ThemeName = "porcelain"
	ThemeMidnight  ThemeName = "midnight"
)

type Theme struct {
	Name ThemeName

	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	TextFaint   lipgloss.AdaptiveColor

	Accent   lipgloss.AdaptiveColor
	Success  lipgloss.AdaptiveColor
	Warn     lipgloss.AdaptiveColor
	Error    lipgloss.AdaptiveColor
	Border   lipgloss.AdaptiveColor
	BorderHi lipgloss.AdaptiveColor

	// Chrome
	TopBar      lipgloss.Style
	TopBarTitle lipgloss.Style
	TopBarBadge lipgloss.Style
	TopBarMeta  lipgloss.Style
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	PaneTitle   lipgloss.Style
	PaneTitleF  lipgloss.Style
	Footer      lipgloss.Style
	InputBox    lipgloss.Style
	InputBoxF   lipgloss.Style
	Spinner     lipgloss.Style
	Notice      lipgloss.Style

	// Chat
	RoleYou lipgloss.Style
	RoleAI  lipgloss.Style
	RoleSys lipgloss.Style

	// Navigation
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	SevHigh      lipgloss.Style
	SevMedium    lipgloss.Style
	Resolved     lipgloss.Style

	// Document
	DocTitle     lipgloss.Style
	DocHeading   lipgloss.Style
	DocBody      lipgloss.Style
	TrackDeleted lipgloss.Style
	TrackAdded   lipgloss.Style
	AppliedHi    lipgloss.Style

	// Risk cards and forms
	CardTitle lipgloss.Style
	CardLabel lipgloss.Style
	CardQuote lipgloss.Style
	FieldName lipgloss.Style
	FieldSel  lipgloss.Style
}

// NewTheme resolves the theme by name, with GENIE_THEME and
// GENIE_NO_COLOR taking precedence over the config value.
func NewTheme(name string) Theme {
	if env := os.Getenv("GENIE_THEME"); env != "" {
		name = env
	}
	if os.Getenv("GENIE_NO_COLOR") == "1" {
		return newNoColorTheme()
	}
	switch ThemeName(name) {
	case ThemeMidnight:
		return newMidnightTheme()
	default:
		return newPorcelainTheme()
	}
}

func (t *Theme) buildStyles() {
	t.TopBar = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.TopBarTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.TopBarBadge = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.TopBarMeta = lipgloss.NewStyle().Foreground(t.TextFaint)

	t.Pane = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.PaneFocused = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.BorderHi).Padding(0, 1)
	t.PaneTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextMuted)
	t.PaneTitleF = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputBox = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.InputBoxF = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.BorderHi).Padding(0, 1)
	t.Spinner = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.Notice = lipgloss.NewStyle().Foreground(t.Success)

	t.RoleYou = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.RoleAI = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.RoleSys = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.TabActive = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Underline(true)
	t.TabInactive = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.ListItem = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.ListSelected = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.SevHigh = lipgloss.NewStyle().Foreground(t.Error)
	t.SevMedium = lipgloss.NewStyle().Foreground(t.Warn)
	t.Resolved = lipgloss.NewStyle().Foreground(t.Success)

	t.DocTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.DocHeading = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.DocBody = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.TrackDeleted = lipgloss.NewStyle().Strikethrough(true).Foreground(t.Error)
	t.TrackAdded = lipgloss.NewStyle().Foreground(t.Success)
	t.AppliedHi = lipgloss.NewStyle().Bold(true).Foreground(t.Success)

	t.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.CardLabel = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.CardQuote = lipgloss.NewStyle().Italic(true).Foreground(t.TextMuted)
	t.FieldName = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.FieldSel = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
}

func newPorcelainTheme() Theme {
	t := Theme{
		Name:        ThemePorcelain,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#1d2433", Dark: "#f2f2f2"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#4a5568", Dark: "#c7c7c7"},
		TextFaint:   lipgloss.AdaptiveColor{Light: "#718096", Dark: "#9aa0a6"},

		// Genie purple.
		Accent:   lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#a78bfa"},
		Success:  lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#46d1b7"},
		Warn:     lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f4b27d"},
		Error:    lipgloss.AdaptiveColor{Light: "#b42318", Dark: "#ff7a7a"},
		Border:   lipgloss.AdaptiveColor{Light: "#cbd5e0", Dark: "#3a3a3a"},
		BorderHi: lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#a78bfa"},
	}
	t.buildStyles()
	return t
}

func newMidnightTheme() Theme {
	t := Theme{
		Name:        ThemeMidnight,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#eaeaea"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#374151", Dark: "#b7b7b7"},
		TextFaint:   lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#8d8d8d"},

		Accent:   lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#c4b5fd"},
		Success:  lipgloss.AdaptiveColor{Light: "#059669", Dark: "#46d1b7"},
		Warn:     lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f4b27d"},
		Error:    lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ff7a7a"},
		Border:   lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#2a2a2a"},
		BorderHi: lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#c4b5fd"},
	}
	t.buildStyles()
	return t
}

func newNoColorTheme() Theme {
	mono := func(l, d string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: l, Dark: d}
	}
	t := Theme{
		Name:        "no-color",
		TextPrimary: mono("#000000", "#ffffff"),
		TextMuted:   mono("#333333", "#dddddd"),
		TextFaint:   mono("#555555", "#bbbbbb"),
		Accent:      mono("#000000", "#ffffff"),
		Success:     mono("#000000", "#ffffff"),
		Warn:        mono("#000000", "#ffffff"),
		Error:       mono("#000000", "#ffffff"),
		Border:      mono("#555555", "#777777"),
		BorderHi:    mono("#000000", "#ffffff"),
	}
	t.buildStyles()
	return t
}
