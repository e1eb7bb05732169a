package infrastructure

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/jung-kurt/gofpdf"
)

// GofpdfRenderer is a pure-Go fallback for environments without Chrome.
// It keeps the document's text and structure but not its stylesheet: the
// body is converted to Markdown and drawn as headings, list items and
// paragraphs on A4.
type GofpdfRenderer struct{}

func NewGofpdfRenderer() *GofpdfRenderer { return &GofpdfRenderer{} }

var (
	numberedItem   = regexp.MustCompile(`^\d+\.\s`)
	markdownEscape = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!|<>~])`)
	italicMarker   = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCode     = regexp.MustCompile("`([^`]+)`")
	markdownLink   = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

func (r *GofpdfRenderer) RenderHTMLToPDF(ctx context.Context, doc string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := extractBody(doc)
	if err != nil {
		return nil, err
	}
	markdown, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return drawMarkdown(markdown)
}

// extractBody isolates <body> and rewrites the resume markup into elements
// the Markdown converter understands: section titles become headings and
// inline contact and skill items get separators.
func extractBody(doc string) (string, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	d.Find("script, style, noscript").Remove()

	d.Find(".resume-section-title, .section-title").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("<h2>" + html.EscapeString(strings.TrimSpace(s.Text())) + "</h2>")
	})
	d.Find(".item-title").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("<h3>" + html.EscapeString(strings.TrimSpace(s.Text())) + "</h3>")
	})
	d.Find(".contact span, .skill-tag").Each(func(_ int, s *goquery.Selection) {
		if s.Next().Length() == 0 {
			return
		}
		if s.HasClass("skill-tag") {
			s.AppendHtml(", ")
		} else {
			s.AppendHtml(" | ")
		}
	})

	body := d.Find("body").First()
	if body.Length() == 0 {
		return "", fmt.Errorf("no body found in document")
	}
	out, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("serializing body: %w", err)
	}
	return out, nil
}

func drawMarkdown(markdown string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pdf.Ln(2)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			drawHeading(pdf, tr(cleanInlineMarkdown(strings.TrimLeft(trimmed, "# "))), level)
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetX(pdf.GetX() + 4)
			pdf.MultiCell(0, 5, tr("• "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)
		case numberedItem.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func drawHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 20, 2: 13, 3: 11}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.55, text, "", "L", false)
	pdf.Ln(1)
}

// cleanInlineMarkdown strips inline Markdown formatting and escapes.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicMarker.ReplaceAllString(text, " $1 ")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = markdownLink.ReplaceAllString(text, "$1")
	text = markdownEscape.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
