// Package render projects a canonical resume record into body markup for
// the single-column (standard) and two-column (creative) layouts. Fragments
// carry no html/head/style wrapper; the document package places them into a
// page skeleton. All record fields pass through html/template, so user text
// is escaped where it is embedded.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Func renders a record into a body fragment.
type Func func(model.Resume) (template.HTML, error)

var templates = template.Must(template.New("render").Funcs(template.FuncMap{
	"bullets":     Bullets,
	"certDetails": certificationDetails,
	"item":        newDatedItem,
}).ParseFS(templateFS, "templates/*.html"))

// Standard renders the single-column layout used by the modern and classic
// skeletons and by the screen preview.
func Standard(r model.Resume) (template.HTML, error) {
	return execute("standard", r)
}

// Creative renders the sidebar/main split expected by the creative skeleton.
func Creative(r model.Resume) (template.HTML, error) {
	return execute("creative", r)
}

func execute(name string, r model.Resume) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, r); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// datedItem is the shared shape of experience, education and certification
// rows in the item-header layout.
type datedItem struct {
	Title       string
	Subtitle    string
	Date        string
	Description string
}

func newDatedItem(title, subtitle, date, description string) datedItem {
	return datedItem{Title: title, Subtitle: subtitle, Date: date, Description: description}
}

// certificationDetails joins issuer and year with a bullet separator when
// both are present, and never yields a dangling separator.
func certificationDetails(c model.CertificationEntry) string {
	switch {
	case c.Issuer != "" && c.Year != "":
		return c.Issuer + " " + bulletGlyph + " " + c.Year
	case c.Issuer != "":
		return c.Issuer
	default:
		return c.Year
	}
}
