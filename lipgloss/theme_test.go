package lipgloss_test

import (
	"testing"

	"github.com/miraflynn/textcompare"
	"github.com/miraflynn/textcompare/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	t.Run("implements Theme interface", func(t *testing.T) {
		t.Parallel()

		var _ textcompare.Theme = lipgloss.DefaultTheme()
	})

	t.Run("returns same styles as DarkTheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, lipgloss.DarkTheme().Styles(), lipgloss.DefaultTheme().Styles())
	})
}

func TestThemes_HighlightUnmatched(t *testing.T) {
	t.Parallel()

	themes := map[string]*lipgloss.Theme{
		"dark":  lipgloss.DarkTheme(),
		"light": lipgloss.LightTheme(),
	}

	for name, theme := range themes {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			styles := theme.Styles()

			assert.Empty(t, styles.Matched.Background, "matched text has no background")
			assert.NotEmpty(t, styles.Unmatched.Background)
			assert.NotEmpty(t, styles.Title.Foreground)
			assert.Regexp(t, `^#[0-9a-f]{6}$`, styles.Unmatched.Background, "terminal colors must be hex")
		})
	}
}
