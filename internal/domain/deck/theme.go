package deck

import (
	"fmt"
	"sort"
)

// DefaultThemeName 未识别模板名时使用的主题
const DefaultThemeName = "modern"

// RGB 颜色
type RGB struct {
	R, G, B uint8
}

// Hex 返回 RRGGBB 形式的十六进制字符串
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Theme 配色方案：背景色与文字色（标题与要点共用）
type Theme struct {
	Name       string
	Background RGB
	Text       RGB
}

var themes = map[string]Theme{
	"modern":    {Name: "modern", Background: RGB{25, 25, 112}, Text: RGB{255, 255, 255}},
	"minimal":   {Name: "minimal", Background: RGB{255, 255, 255}, Text: RGB{30, 30, 30}},
	"corporate": {Name: "corporate", Background: RGB{0, 51, 102}, Text: RGB{255, 215, 0}},
	"creative":  {Name: "creative", Background: RGB{128, 0, 128}, Text: RGB{255, 255, 255}},
	"dark":      {Name: "dark", Background: RGB{15, 15, 15}, Text: RGB{200, 200, 200}},
}

// ResolveTheme 按模板名查找主题，未知名称（含空串）回退到 modern
func ResolveTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultThemeName]
}

// ThemeNames 返回所有可用模板名（按字母序）
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
