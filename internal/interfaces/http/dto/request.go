// Package dto 提供 HTTP 层数据传输对象
package dto

// GenerateFromTextRequest 由纲要文本生成
type GenerateFromTextRequest struct {
	Text     string `json:"text"`
	Template string `json:"template"`
}

// GenerateFromTopicRequest 由主题自动生成
type GenerateFromTopicRequest struct {
	Topic      string `json:"topic"`
	Template   string `json:"template"`
	SlideCount *int   `json:"slide_count"`
}
