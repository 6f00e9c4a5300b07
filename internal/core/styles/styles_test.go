package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"gruvbox", "tokyo-night"}, ThemeNames())
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	assert.True(t, ok)
	assert.NotEmpty(t, p.Primary)

	_, ok = GetPalette("solarized")
	assert.False(t, ok)
}

func TestSetTheme_RebuildsStyles(t *testing.T) {
	t.Cleanup(func() {
		p, _ := GetPalette(DefaultTheme)
		SetTheme(p)
	})

	p, _ := GetPalette("gruvbox")
	SetTheme(p)

	assert.Equal(t, p.Primary, DayHeaderStyle.GetForeground())
	assert.True(t, DayHeaderStyle.GetBold())
}
