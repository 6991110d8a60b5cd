package deck

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	apperrors "ai-ppt-api/pkg/errors"
	"ai-ppt-api/pkg/logger"
	"ai-ppt-api/pkg/tracer"
)

// FileExtension 生成文件扩展名
const FileExtension = ".pptx"

// DocumentWriter 将文档编码为演示文稿文件格式
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document, w io.Writer) error
}

// FileStore 生成文件的存储目录
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) error
}

// Builder 将幻灯片渲染为文件并写入存储
type Builder struct {
	writer DocumentWriter
	store  FileStore
	layout Layout
}

// NewBuilder 创建文档构建器
func NewBuilder(writer DocumentWriter, store FileStore) *Builder {
	return &Builder{
		writer: writer,
		store:  store,
		layout: WidescreenLayout,
	}
}

// Build 按主题渲染幻灯片，返回新文件的文件名（不含目录）
func (b *Builder) Build(ctx context.Context, slides []Slide, themeName string) (string, error) {
	if len(slides) == 0 {
		return "", apperrors.New(apperrors.CodeNoValidSlides, "No valid slides found")
	}

	ctx, span := tracer.Start(ctx, "deck.Build")
	defer span.End()

	doc := &Document{
		Layout: b.layout,
		Theme:  ResolveTheme(themeName),
		Slides: slides,
	}

	var buf bytes.Buffer
	if err := b.writer.WriteDocument(ctx, doc, &buf); err != nil {
		span.RecordError(err)
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "failed to encode presentation")
	}

	name := uuid.New().String() + FileExtension
	if err := b.store.Save(ctx, name, buf.Bytes()); err != nil {
		span.RecordError(err)
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, fmt.Sprintf("failed to save %s", name))
	}

	logger.Info(ctx, "presentation written",
		"file", name,
		"theme", doc.Theme.Name,
		"slides", len(slides),
		"bytes", buf.Len(),
	)
	return name, nil
}
