package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-ppt-api/internal/infrastructure/storage"
	"ai-ppt-api/internal/interfaces/http/dto"
	"ai-ppt-api/pkg/errors"
)

// FrontendHandler 单页应用静态资源处理器
type FrontendHandler struct {
	assets *storage.Assets
}

// NewFrontendHandler 创建前端处理器
func NewFrontendHandler(assets *storage.Assets) *FrontendHandler {
	return &FrontendHandler{assets: assets}
}

// Serve 返回请求路径对应的文件，不存在时返回 index.html；非 GET 请求返回 404
func (h *FrontendHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		dto.AppError(c, errors.ErrNotFound)
		return
	}

	f, info, err := h.assets.Resolve(c.Request.URL.Path)
	if err != nil {
		dto.AppError(c, errors.ErrNotFound)
		return
	}
	defer f.Close()

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
