// Package testutil holds helpers shared by package tests.
package testutil

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Balanced reports whether every opening tag in fragment is closed in order.
// Void elements need no closing tag.
func Balanced(fragment string) error {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var stack []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			if len(stack) > 0 {
				return fmt.Errorf("unclosed elements: %v", stack)
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if !voidElements[string(name)] {
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if len(stack) == 0 {
				return fmt.Errorf("unexpected </%s>", tag)
			}
			if top := stack[len(stack)-1]; top != tag {
				return fmt.Errorf("</%s> closes <%s>", tag, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
}
