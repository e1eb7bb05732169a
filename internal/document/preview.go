package document

import (
	"html/template"
	"strings"
)

// previewClasses maps print class names to the screen stylesheet's names.
var previewClasses = strings.NewReplacer(
	`class="header"`, `class="resume-header"`,
	`class="resume-section-title"`, `class="section-title"`,
	`class="skill-tag"`, `class="skill-pill"`,
)

// Preview rewrites a standard-layout fragment for the live screen preview
// and wraps it in a page container carrying the accent color. The result is
// a screen fragment only; it is never passed to Assemble.
func Preview(fragment template.HTML, accent string) template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="resume-page" style="--accent:`)
	b.WriteString(template.HTMLEscapeString(cssValue(accent)))
	b.WriteString(`">`)
	b.WriteString(previewClasses.Replace(string(fragment)))
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}
