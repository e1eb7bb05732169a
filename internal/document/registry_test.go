package document

import (
	"strings"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestNewRegistry_Skeletons(t *testing.T) {
	reg := newTestRegistry(t)

	for _, l := range Layouts() {
		t.Run(l.String(), func(t *testing.T) {
			tpl := reg.Lookup(l.String())
			if tpl.Layout != l {
				t.Errorf("Lookup(%q).Layout = %v", l, tpl.Layout)
			}
			if err := checkSkeleton(tpl.Skeleton); err != nil {
				t.Error(err)
			}
			if tpl.Body == nil {
				t.Error("no body renderer bound")
			}
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := newTestRegistry(t)
	got := strings.Join(reg.Names(), ",")
	if got != "modern,classic,creative" {
		t.Errorf("Names() = %s, want modern,classic,creative", got)
	}
}

func TestRegistry_LookupFallback(t *testing.T) {
	reg := newTestRegistry(t)
	def := reg.Lookup("modern")

	for _, name := range []string{"", "unknown", "MODERN", "Creative ", "  classic  "} {
		t.Run(name, func(t *testing.T) {
			got := reg.Lookup(name)
			want := def
			switch strings.TrimSpace(name) {
			case "classic":
				want = reg.Lookup("classic")
			}
			if got.Layout != want.Layout {
				t.Errorf("Lookup(%q) = %v, want %v", name, got.Layout, want.Layout)
			}
		})
	}
}

func TestCheckSkeleton(t *testing.T) {
	tests := []struct {
		name     string
		skeleton string
		wantErr  bool
	}{
		{name: "valid", skeleton: "a " + AccentPlaceholder + " b " + BodyPlaceholder},
		{name: "missing accent", skeleton: BodyPlaceholder, wantErr: true},
		{name: "missing body", skeleton: AccentPlaceholder, wantErr: true},
		{name: "duplicate accent", skeleton: AccentPlaceholder + AccentPlaceholder + BodyPlaceholder, wantErr: true},
		{name: "duplicate body", skeleton: AccentPlaceholder + BodyPlaceholder + BodyPlaceholder, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkSkeleton(tt.skeleton); (err != nil) != tt.wantErr {
				t.Errorf("checkSkeleton() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in   string
		want Layout
	}{
		{in: "modern", want: Modern},
		{in: "classic", want: Classic},
		{in: "creative", want: Creative},
		{in: " creative ", want: Creative},
		{in: "", want: DefaultLayout},
		{in: "Creative", want: DefaultLayout},
		{in: "fancy", want: DefaultLayout},
	}
	for _, tt := range tests {
		if got := ParseLayout(tt.in); got != tt.want {
			t.Errorf("ParseLayout(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if s := Layout(42).String(); s != "modern" {
		t.Errorf("out of range Layout.String() = %q, want modern", s)
	}
}
