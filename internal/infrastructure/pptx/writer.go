// Package pptx 基于 GoPPT 将演示文稿文档编码为 PowerPoint 2007 (.pptx) 格式
package pptx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"

	ppt "github.com/VantageDataChat/GoPPT"

	"ai-ppt-api/internal/domain/deck"
	"ai-ppt-api/pkg/tracer"
)

const (
	emuPerInch = 914400

	// spcPts 以百分之一磅计
	spacingPerPoint = 100

	creator = "ai-ppt-api"
)

// Writer GoPPT 文档编码器
type Writer struct{}

// NewWriter 创建编码器
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDocument 编码文档并写入 w
func (w *Writer) WriteDocument(ctx context.Context, doc *deck.Document, out io.Writer) error {
	if doc == nil || len(doc.Slides) == 0 {
		return fmt.Errorf("document has no slides")
	}

	_, span := tracer.Start(ctx, "pptx.WriteDocument")
	defer span.End()

	p := ppt.New()
	p.GetDocumentProperties().Title = doc.Title()
	p.GetDocumentProperties().Creator = creator
	p.GetLayout().SetCustomLayout(emu(doc.Layout.Width), emu(doc.Layout.Height))

	for i, s := range doc.Slides {
		// 新演示文稿自带一张空白页，首页直接复用
		slide := p.GetActiveSlide()
		if i > 0 {
			slide = p.CreateSlide()
		}
		renderSlide(slide, doc.Layout, doc.Theme, s)
	}

	pw, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return fmt.Errorf("create pptx writer: %w", err)
	}
	writer, ok := pw.(*ppt.PPTXWriter)
	if !ok {
		return fmt.Errorf("unexpected writer type %T", pw)
	}

	var buf bytes.Buffer
	if err := writer.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode pptx: %w", err)
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write pptx: %w", err)
	}
	return nil
}

func emu(inches float64) int64 {
	return int64(math.Round(inches * emuPerInch))
}

func place(shape *ppt.RichTextShape, box deck.Box) {
	shape.SetOffsetX(emu(box.X)).SetOffsetY(emu(box.Y))
	shape.SetWidth(emu(box.Width)).SetHeight(emu(box.Height))
	shape.SetWordWrap(true)
}

func renderSlide(slide *ppt.Slide, layout deck.Layout, theme deck.Theme, s deck.Slide) {
	textColor := ppt.NewColor(argb(theme.Text))
	slide.SetBackground(ppt.NewFill().SetSolid(ppt.NewColor(argb(theme.Background))))

	title := slide.CreateRichTextShape()
	place(title, layout.Title)
	tr := title.CreateTextRun(s.Title)
	tr.GetFont().SetSize(deck.TitleFontSize).SetBold(true).SetColor(textColor)
	title.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))

	if len(s.Points) == 0 {
		return
	}

	body := slide.CreateRichTextShape()
	place(body, layout.Body)
	for i, point := range s.Points {
		para := body.GetActiveParagraph()
		if i > 0 {
			para = body.CreateParagraph()
		}
		para.SetSpaceAfter(deck.BodySpaceAfter * spacingPerPoint)
		run := para.CreateTextRun(deck.BulletLine(point))
		run.GetFont().SetSize(deck.BodyFontSize).SetColor(textColor)
	}
}

func argb(c deck.RGB) string {
	return "FF" + c.Hex()
}
