package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-ppt-api/internal/infrastructure/storage"
	"ai-ppt-api/internal/interfaces/http/dto"
	"ai-ppt-api/pkg/errors"
	"ai-ppt-api/pkg/logger"
)

const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// DownloadHandler 生成文件下载处理器
type DownloadHandler struct {
	store *storage.Store
}

// NewDownloadHandler 创建下载处理器
func NewDownloadHandler(store *storage.Store) *DownloadHandler {
	return &DownloadHandler{store: store}
}

// Download 以附件形式返回生成的文件
// @Summary 下载生成文件
// @Tags Presentations
// @Produce application/vnd.openxmlformats-officedocument.presentationml.presentation
// @Param filename path string true "文件名"
// @Failure 404 {object} dto.ErrorResponse
// @Router /generated/{filename} [get]
func (h *DownloadHandler) Download(c *gin.Context) {
	name := c.Param("filename")

	f, info, err := h.store.Open(name)
	if err != nil {
		logger.Debug(c.Request.Context(), "download miss", "file", name, "error", err.Error())
		dto.AppError(c, errors.ErrFileNotFound)
		return
	}
	defer f.Close()

	c.Header("Content-Type", pptxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeContent(c.Writer, c.Request, name, info.ModTime(), f)
}
