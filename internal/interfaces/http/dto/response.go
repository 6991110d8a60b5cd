package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-ppt-api/pkg/errors"
)

// DownloadPrefix 生成文件的下载路径前缀
const DownloadPrefix = "/generated/"

// GenerateResponse 生成成功响应
type GenerateResponse struct {
	Success         bool   `json:"success"`
	FilePath        string `json:"file_path"`
	DownloadURL     string `json:"download_url"`
	SlidesGenerated *int   `json:"slides_generated,omitempty"`
}

// TemplatesResponse 可用模板列表
type TemplatesResponse struct {
	Success   bool     `json:"success"`
	Templates []string `json:"templates"`
	Default   string   `json:"default"`
}

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewGenerateResponse 构建生成成功响应，slides 为空时不输出页数字段
func NewGenerateResponse(fileName string, slides *int) GenerateResponse {
	path := DownloadPrefix + fileName
	return GenerateResponse{
		Success:         true,
		FilePath:        path,
		DownloadURL:     path,
		SlidesGenerated: slides,
	}
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, ErrorResponse{
		Success: false,
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

// AppError 按 AppError 的状态码与文案返回错误
func AppError(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	Error(c, status, appErr.Message)
}

// AbortAppError 中止后续处理并返回 AppError
func AbortAppError(c *gin.Context, err error) {
	c.Abort()
	AppError(c, err)
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}
