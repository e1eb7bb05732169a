// Package document turns a canonical resume record into a complete page:
// it owns the layout registry, assembles skeleton + accent + body for final
// output, and adapts the standard fragment for the on-screen preview.
package document

import (
	"strings"

	"resume-builder/internal/model"
)

// Assembler produces complete documents from a Registry.
type Assembler struct {
	registry *Registry
}

func NewAssembler(reg *Registry) *Assembler {
	return &Assembler{registry: reg}
}

// Registry returns the registry the assembler reads from.
func (a *Assembler) Registry() *Registry {
	return a.registry
}

// Assemble renders r with the body renderer bound to layout and places the
// result into that layout's skeleton. The accent placeholder is replaced
// first and the body last, each exactly once, so placeholder-like text in
// user content is never substituted.
func (a *Assembler) Assemble(layout, accent string, r model.Resume) (string, error) {
	tpl := a.registry.Lookup(layout)
	body, err := tpl.Body(r)
	if err != nil {
		return "", err
	}
	doc := strings.Replace(tpl.Skeleton, AccentPlaceholder, cssValue(accent), 1)
	doc = strings.Replace(doc, BodyPlaceholder, string(body), 1)
	return doc, nil
}
