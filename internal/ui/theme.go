package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ThemePreferenceKey is the key used to store theme preference
const ThemePreferenceKey = "demoTheme"

var themeLabels = map[string]string{
	"system": "System Default",
	"light":  "Light",
	"dark":   "Dark",
}

// forcedVariant wraps a theme to force a specific variant (light/dark)
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// Color returns the color for the forced variant, ignoring the passed variant
func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// ApplyTheme sets the application theme based on the mode
// mode can be "dark", "light", or "system" (default)
func ApplyTheme(a fyne.App, mode string) {
	switch mode {
	case "dark":
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		a.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	default:
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}

// LoadThemePreference applies override when set, otherwise the saved
// preference.
func LoadThemePreference(a fyne.App, override string) {
	if override != "" {
		ApplyTheme(a, override)
		return
	}
	ApplyTheme(a, a.Preferences().StringWithFallback(ThemePreferenceKey, "system"))
}

// SaveThemePreference saves and applies the theme preference
func SaveThemePreference(a fyne.App, mode string) {
	a.Preferences().SetString(ThemePreferenceKey, mode)
	ApplyTheme(a, mode)
}

// CreateThemeSelector creates a widget for selecting the theme, starting
// from current.
func CreateThemeSelector(a fyne.App, current string) *widget.Select {
	selector := widget.NewSelect(
		[]string{themeLabels["system"], themeLabels["light"], themeLabels["dark"]},
		func(selected string) {
			SaveThemePreference(a, themeModeFor(selected))
		},
	)

	if current == "" {
		current = a.Preferences().StringWithFallback(ThemePreferenceKey, "system")
	}
	label, ok := themeLabels[current]
	if !ok {
		label = themeLabels["system"]
	}
	selector.Selected = label
	return selector
}

func themeModeFor(label string) string {
	for mode, l := range themeLabels {
		if l == label {
			return mode
		}
	}
	return "system"
}
