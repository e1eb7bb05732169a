package document

import "strings"

// Layout is the closed set of visual layouts a resume can be produced in.
type Layout int

const (
	Modern Layout = iota
	Classic
	Creative
)

// DefaultLayout is used for absent or unknown layout names.
const DefaultLayout = Modern

var layoutNames = [...]string{
	Modern:   "modern",
	Classic:  "classic",
	Creative: "creative",
}

func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return layoutNames[DefaultLayout]
	}
	return layoutNames[l]
}

// ParseLayout maps a layout name to its Layout. Unknown names fall back to
// DefaultLayout.
func ParseLayout(name string) Layout {
	name = strings.TrimSpace(name)
	for i, n := range layoutNames {
		if n == name {
			return Layout(i)
		}
	}
	return DefaultLayout
}

// Layouts returns every layout in registration order.
func Layouts() []Layout {
	out := make([]Layout, len(layoutNames))
	for i := range layoutNames {
		out[i] = Layout(i)
	}
	return out
}
