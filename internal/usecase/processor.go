package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"resume-builder/internal/document"
	"resume-builder/internal/domain"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

// ErrInvalidPDF is returned when the rasterizer output lacks the PDF signature.
var ErrInvalidPDF = errors.New("invalid PDF output")

// Renderer turns a complete HTML document into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Format selects the output of a generation.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// ParseFormat maps a format name to a Format; anything but "html" is PDF.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatHTML)) {
		return FormatHTML
	}
	return FormatPDF
}

type Processor struct {
	renderer  Renderer
	assembler *document.Assembler
	logger    *slog.Logger
}

func NewProcessor(r Renderer, a *document.Assembler, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{renderer: r, assembler: a, logger: logger}
}

// Layouts lists the registered layout names, default first.
func (p *Processor) Layouts() []string {
	return p.assembler.Registry().Names()
}

// Generate normalizes the form, assembles the document in the requested
// layout and, for PDF output, rasterizes it. The rasterizer is called once;
// its failure is returned as is.
func (p *Processor) Generate(ctx context.Context, form Form, format Format) (*domain.Document, error) {
	start := time.Now()
	r := NewResume(form)
	layout := document.ParseLayout(r.TemplateName).String()

	html, err := p.assembler.Assemble(r.TemplateName, r.AccentColor, r)
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", layout, err)
	}

	doc := &domain.Document{
		ID:        uuid.New(),
		Layout:    layout,
		CreatedAt: time.Now().UTC(),
	}

	if format == FormatHTML {
		doc.FileName = FileName(r.Name, "html")
		doc.ContentType = domain.ContentTypeHTML
		doc.Content = []byte(html)
		p.logger.Info("document generated", "id", doc.ID, "layout", layout, "format", format, "bytes", len(doc.Content), "duration", time.Since(start))
		return doc, nil
	}

	pdf, err := p.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		p.logger.Error("rasterization failed", "id", doc.ID, "layout", layout, "error", err)
		return nil, err
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		p.logger.Error("rasterization failed", "id", doc.ID, "layout", layout, "error", ErrInvalidPDF, "bytes", len(pdf))
		return nil, fmt.Errorf("%w (len=%d)", ErrInvalidPDF, len(pdf))
	}

	doc.FileName = FileName(r.Name, "pdf")
	doc.ContentType = domain.ContentTypePDF
	doc.Content = pdf
	p.logger.Info("document generated", "id", doc.ID, "layout", layout, "format", FormatPDF, "bytes", len(pdf), "duration", time.Since(start))
	return doc, nil
}

// Preview renders the standard fragment for the on-screen preview,
// whatever layout the form requests.
func (p *Processor) Preview(form Form) (template.HTML, error) {
	r := NewResume(form)
	body, err := render.Standard(r)
	if err != nil {
		return "", err
	}
	return document.Preview(body, r.AccentColor), nil
}

// FileName is the download name for a resume: the name with spaces replaced
// by underscores, or "Resume" when there is no name.
func FileName(name, ext string) string {
	base := strings.ReplaceAll(name, " ", "_")
	if base == "" {
		base = "Resume"
	}
	return base + "_Resume." + ext
}
