package infrastructure

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Renderer names accepted by NewRenderer.
const (
	RendererChromedp = "chromedp"
	RendererGofpdf   = "gofpdf"
)

// Renderer rasterizes a complete HTML document to PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// RendererOptions configures the renderer built by NewRenderer.
type RendererOptions struct {
	ChromePath string
	Timeout    time.Duration
}

// NewRenderer returns the renderer registered under name.
func NewRenderer(name string, opts RendererOptions) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RendererChromedp:
		return NewChromedpRenderer(opts.ChromePath, opts.Timeout), nil
	case RendererGofpdf:
		return NewGofpdfRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
}
