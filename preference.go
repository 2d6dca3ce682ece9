package docsite

import "context"

// Theme is the color scheme preference of a reader.
type Theme string

// Supported themes. ThemeSystem follows the operating system setting.
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// DefaultTheme is used for readers without a stored preference.
const DefaultTheme = ThemeSystem

// Valid reports whether t is a supported theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Toggle returns the theme after pressing the theme toggle.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// PreferenceService stores per-reader preferences keyed by an anonymous
// client id.
type PreferenceService interface {
	// FindTheme returns the stored theme, or DefaultTheme when none is stored.
	FindTheme(ctx context.Context, clientID string) (Theme, error)

	// SetTheme stores the theme for clientID.
	// Returns EINVALID for an unsupported theme or empty client id.
	SetTheme(ctx context.Context, clientID string, theme Theme) error
}
