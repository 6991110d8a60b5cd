package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTheme_KnownNames(t *testing.T) {
	dark := ResolveTheme("dark")
	assert.Equal(t, "dark", dark.Name)
	assert.Equal(t, RGB{15, 15, 15}, dark.Background)
	assert.Equal(t, RGB{200, 200, 200}, dark.Text)

	corporate := ResolveTheme("corporate")
	assert.Equal(t, RGB{0, 51, 102}, corporate.Background)
	assert.Equal(t, RGB{255, 215, 0}, corporate.Text)
}

func TestResolveTheme_FallsBackToModern(t *testing.T) {
	modern := ResolveTheme("modern")
	for _, name := range []string{"", "unknown-xyz", "Dark", " modern"} {
		got := ResolveTheme(name)
		assert.Equal(t, modern.Background, got.Background, "name %q", name)
		assert.Equal(t, modern.Text, got.Text, "name %q", name)
	}
	assert.Equal(t, RGB{25, 25, 112}, modern.Background)
}

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"corporate", "creative", "dark", "minimal", "modern"}, ThemeNames())
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "191970", RGB{25, 25, 112}.Hex())
	assert.Equal(t, "FFD700", RGB{255, 215, 0}.Hex())
}

func TestBulletLine(t *testing.T) {
	assert.Equal(t, "➤ point a", BulletLine("  point a "))
}
