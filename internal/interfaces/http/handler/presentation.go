// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-ppt-api/internal/application/presentation"
	"ai-ppt-api/internal/interfaces/http/dto"
)

// PresentationService 演示文稿生成能力
type PresentationService interface {
	FromText(ctx context.Context, text, template string) (*presentation.Result, error)
	FromTopic(ctx context.Context, topic, template string, slideCount *int) (*presentation.Result, error)
}

// PresentationHandler 演示文稿生成处理器
type PresentationHandler struct {
	svc PresentationService
}

// NewPresentationHandler 创建处理器
func NewPresentationHandler(svc PresentationService) *PresentationHandler {
	return &PresentationHandler{svc: svc}
}

// GenerateFromText 由纲要文本生成演示文稿
// @Summary 由纲要文本生成
// @Tags Presentations
// @Accept json
// @Produce json
// @Param body body dto.GenerateFromTextRequest true "纲要文本与模板"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-ppt [post]
func (h *PresentationHandler) GenerateFromText(c *gin.Context) {
	var req dto.GenerateFromTextRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.svc.FromText(c.Request.Context(), req.Text, req.Template)
	if err != nil {
		dto.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGenerateResponse(res.FileName, nil))
}

// GenerateFromTopic 由主题经模型生成演示文稿
// @Summary 由主题自动生成
// @Tags Presentations
// @Accept json
// @Produce json
// @Param body body dto.GenerateFromTopicRequest true "主题、模板与页数"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-auto-ppt [post]
func (h *PresentationHandler) GenerateFromTopic(c *gin.Context) {
	var req dto.GenerateFromTopicRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.svc.FromTopic(c.Request.Context(), req.Topic, req.Template, req.SlideCount)
	if err != nil {
		dto.AppError(c, err)
		return
	}

	slides := res.SlideCount
	c.JSON(http.StatusOK, dto.NewGenerateResponse(res.FileName, &slides))
}

// bindJSON 解析请求体，空请求体按空对象处理
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		dto.BadRequest(c, "invalid request body")
		return false
	}
	return true
}
