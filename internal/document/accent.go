package document

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// cssValue embeds an accent color in a CSS declaration value. The color is
// not validated; characters that could end the declaration, the rule or the
// enclosing <style> element are written as CSS hex escapes instead.
func cssValue(accent string) string {
	if accent == "" {
		accent = model.DefaultAccent
	}
	var b strings.Builder
	for _, c := range accent {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case strings.ContainsRune("#(),.% -+", c):
			b.WriteRune(c)
		default:
			fmt.Fprintf(&b, `\%x `, c)
		}
	}
	return b.String()
}
