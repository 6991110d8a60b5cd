package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-ppt-api/internal/domain/deck"
	"ai-ppt-api/internal/interfaces/http/dto"
)

// ListTemplates 返回可用的模板名称
// @Summary 模板列表
// @Tags Presentations
// @Produce json
// @Success 200 {object} dto.TemplatesResponse
// @Router /api/templates [get]
func ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TemplatesResponse{
		Success:   true,
		Templates: deck.ThemeNames(),
		Default:   deck.DefaultThemeName,
	})
}
