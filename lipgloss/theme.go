// Package lipgloss provides themes and terminal rendering using the Lipgloss
// styling library.
package lipgloss

import "github.com/miraflynn/textcompare"

// Compile-time interface verification.
var _ textcompare.Theme = (*Theme)(nil)

// Theme implements textcompare.Theme with Lipgloss-compatible hex colors.
type Theme struct {
	styles textcompare.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() textcompare.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: textcompare.Styles{
			Matched: textcompare.ColorPair{
				Foreground: "#cdd6f4", // Plain text
			},
			Unmatched: textcompare.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f38ba8", // Bright red background
			},
			Title: textcompare.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#313244", // Dark surface
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
// Its unmatched background is the web view's light coral.
func LightTheme() *Theme {
	return &Theme{
		styles: textcompare.Styles{
			Matched: textcompare.ColorPair{
				Foreground: "#4c4f69",
			},
			Unmatched: textcompare.ColorPair{
				Foreground: "#4c4f69",
				Background: "#f08080", // lightcoral
			},
			Title: textcompare.ColorPair{
				Foreground: "#df8e1d", // Yellow
				Background: "#e6e9ef", // Light surface
			},
		},
	}
}
