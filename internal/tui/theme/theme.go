// Package theme defines the color palettes for the ccgen terminal UI.
package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used by the progress view and setup form.
type Theme struct {
	Name         string
	Surface      lipgloss.Color // card background
	Border       lipgloss.Color
	TextDim      lipgloss.Color // hints, empty bar cells
	TextMuted    lipgloss.Color // labels
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Green        lipgloss.Color
	Orange       lipgloss.Color
	Red          lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#879A39"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Surface:      lipgloss.Color("#313244"),
	Border:       lipgloss.Color("#585B70"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	Green:        lipgloss.Color("#A6E3A1"),
	Orange:       lipgloss.Color("#FAB387"),
	Red:          lipgloss.Color("#F38BA8"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:         "terminal",
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Terminal}

// Names returns the names of all themes in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Form maps the palette onto a huh form theme.
func (t Theme) Form() *huh.Theme {
	ft := huh.ThemeBase()

	ft.Focused.Base = ft.Focused.Base.BorderForeground(t.Border)
	ft.Focused.Title = ft.Focused.Title.Foreground(t.Accent).Bold(true)
	ft.Focused.Description = ft.Focused.Description.Foreground(t.TextMuted)
	ft.Focused.ErrorIndicator = ft.Focused.ErrorIndicator.Foreground(t.Red)
	ft.Focused.ErrorMessage = ft.Focused.ErrorMessage.Foreground(t.Red)
	ft.Focused.SelectSelector = ft.Focused.SelectSelector.Foreground(t.AccentBright)
	ft.Focused.SelectedOption = ft.Focused.SelectedOption.Foreground(t.Green)
	ft.Focused.TextInput.Cursor = ft.Focused.TextInput.Cursor.Foreground(t.AccentBright)
	ft.Focused.TextInput.Placeholder = ft.Focused.TextInput.Placeholder.Foreground(t.TextDim)
	ft.Focused.FocusedButton = ft.Focused.FocusedButton.Background(t.Accent).Foreground(t.Surface)

	ft.Blurred = ft.Focused
	ft.Blurred.Base = ft.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	return ft
}
