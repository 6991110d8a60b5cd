// Package deck 定义演示文稿领域模型：幻灯片、主题与版式
package deck

import "strings"

// Slide 一页幻灯片的结构化内容
type Slide struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// Document 待渲染的完整演示文稿
type Document struct {
	Layout Layout
	Theme  Theme
	Slides []Slide
}

// Title 文档标题，取首页标题
func (d *Document) Title() string {
	if d == nil || len(d.Slides) == 0 {
		return ""
	}
	return d.Slides[0].Title
}

// BulletLine 渲染单条要点：固定标记 + 空格 + 去除首尾空白的文本
func BulletLine(point string) string {
	return BulletMarker + " " + strings.TrimSpace(point)
}
