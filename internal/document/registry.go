package document

import (
	"embed"
	"fmt"
	"strings"

	"resume-builder/internal/render"
)

// Placeholders every skeleton carries exactly once.
const (
	AccentPlaceholder = "[[accent-color]]"
	BodyPlaceholder   = "[[body-fragment]]"
)

//go:embed skeletons/*.html
var skeletonFS embed.FS

// Template binds a layout to its page skeleton and its body renderer.
type Template struct {
	Layout   Layout
	Skeleton string
	Body     render.Func
}

// Registry is the fixed set of layout templates. It is built once at
// startup and only read afterwards, so it is safe for concurrent use.
type Registry struct {
	templates map[Layout]Template
}

// NewRegistry loads the embedded skeletons for every layout and checks that
// each holds exactly one accent and one body placeholder.
func NewRegistry() (*Registry, error) {
	reg := &Registry{templates: make(map[Layout]Template, len(layoutNames))}
	for _, l := range Layouts() {
		b, err := skeletonFS.ReadFile("skeletons/" + l.String() + ".html")
		if err != nil {
			return nil, fmt.Errorf("read skeleton %s: %w", l, err)
		}
		skeleton := string(b)
		if err := checkSkeleton(skeleton); err != nil {
			return nil, fmt.Errorf("skeleton %s: %w", l, err)
		}

		body := render.Standard
		if l == Creative {
			body = render.Creative
		}
		reg.templates[l] = Template{Layout: l, Skeleton: skeleton, Body: body}
	}
	return reg, nil
}

func checkSkeleton(s string) error {
	for _, ph := range []string{AccentPlaceholder, BodyPlaceholder} {
		if n := strings.Count(s, ph); n != 1 {
			return fmt.Errorf("placeholder %s occurs %d times, want 1", ph, n)
		}
	}
	return nil
}

// Lookup returns the template for a layout name, falling back to the
// default layout for unknown names.
func (r *Registry) Lookup(name string) Template {
	return r.templates[ParseLayout(name)]
}

// Names lists the registered layout names, default first.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for _, l := range Layouts() {
		if _, ok := r.templates[l]; ok {
			names = append(names, l.String())
		}
	}
	return names
}
