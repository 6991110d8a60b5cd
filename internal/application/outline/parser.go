// Package outline 将模型返回或用户粘贴的纲要文本解析为幻灯片
package outline

import (
	"regexp"
	"strings"
	"unicode"

	"ai-ppt-api/internal/domain/deck"
)

// slideMarker 匹配 "Slide <数字>:"，不区分大小写，数字两侧与冒号前允许空白
var slideMarker = regexp.MustCompile(`(?i)slide\s*\d+\s*:`)

// Parse 将纲要文本切分为至多 maxSlides 张幻灯片
//
// 每个标记之后到下一个标记（或文本末尾）为一段；段内首个非空行为标题，其余非空行为要点。
// 第一个标记之前的文本被忽略，编号本身不参与排序。无有效内容的段被丢弃，结果不做补齐。
func Parse(text string, maxSlides int) []deck.Slide {
	slides := make([]deck.Slide, 0)
	if maxSlides <= 0 {
		return slides
	}

	locs := slideMarker.FindAllStringIndex(text, -1)
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		slide, ok := parseSegment(text[loc[1]:end])
		if !ok {
			continue
		}
		slides = append(slides, slide)
		if len(slides) == maxSlides {
			break
		}
	}
	return slides
}

func parseSegment(segment string) (deck.Slide, bool) {
	var lines []string
	for _, raw := range strings.Split(segment, "\n") {
		if line := cleanLine(raw); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return deck.Slide{}, false
	}
	return deck.Slide{Title: lines[0], Points: lines[1:]}, true
}

// cleanLine 去除首尾空白以及行首的项目符号
func cleanLine(line string) string {
	line = strings.TrimLeftFunc(strings.TrimSpace(line), func(r rune) bool {
		return r == '-' || r == '•' || unicode.IsSpace(r)
	})
	return strings.TrimSpace(line)
}
