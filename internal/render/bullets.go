package render

import (
	"html/template"
	"regexp"
	"strings"
	"unicode"
)

const bulletGlyph = "•"

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Bullets turns multi-line free text into a <ul> with one escaped <li> per
// non-blank line, in input order. One leading "•" (and the whitespace after
// it) is stripped from each line. Text without any non-blank line yields "".
func Bullets(text string) template.HTML {
	var b strings.Builder
	n := 0
	for _, line := range lineBreak.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, bulletGlyph); ok {
			line = strings.TrimLeftFunc(rest, unicode.IsSpace)
		}
		if n == 0 {
			b.WriteString("<ul>")
		}
		b.WriteString("<li>")
		b.WriteString(template.HTMLEscapeString(line))
		b.WriteString("</li>")
		n++
	}
	if n == 0 {
		return ""
	}
	b.WriteString("</ul>")
	return template.HTML(b.String())
}
