// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/relic"

// Compile-time interface verification.
var _ relic.Theme = (*Theme)(nil)

// Theme implements relic.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles relic.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() relic.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: relic.Styles{
			FileHeader: relic.ColorPair{
				Foreground: "#cba6f7", // Magenta
			},
			CommitDate: relic.ColorPair{
				Foreground: "#94e2d5", // Cyan
			},
			CommitHash: relic.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
			Matched: relic.ColorPair{
				Foreground: "#cdd6f4", // Bright text; rendered bold
			},
			Context: relic.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			LineNumber: relic.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			MatchedNum: relic.ColorPair{
				Foreground: "#a6e3a1", // Green
			},
			Note: relic.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: relic.Styles{
			FileHeader: relic.ColorPair{
				Foreground: "#8839ef", // Magenta
			},
			CommitDate: relic.ColorPair{
				Foreground: "#179299", // Teal
			},
			CommitHash: relic.ColorPair{
				Foreground: "#df8e1d", // Yellow
			},
			Matched: relic.ColorPair{
				Foreground: "#4c4f69", // Dark text; rendered bold
			},
			Context: relic.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			LineNumber: relic.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
			MatchedNum: relic.ColorPair{
				Foreground: "#40a02b", // Green
			},
			Note: relic.ColorPair{
				Foreground: "#9ca0b0", // Muted gray
			},
		},
	}
}
