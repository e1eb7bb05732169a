package document

import (
	"strings"
	"testing"

	"resume-builder/internal/model"

	"github.com/PuerkitoBio/goquery"
)

func sampleResume() model.Resume {
	return model.Resume{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: "Go, SQL",
		Experience: []model.ExperienceEntry{
			{Title: "Engineer", Company: "Acme", Description: "Built things"},
		},
	}
}

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	return NewAssembler(newTestRegistry(t))
}

func TestAssemble_ReplacesPlaceholders(t *testing.T) {
	a := newTestAssembler(t)
	for _, l := range Layouts() {
		t.Run(l.String(), func(t *testing.T) {
			doc, err := a.Assemble(l.String(), "#ff0000", sampleResume())
			if err != nil {
				t.Fatalf("Assemble: %v", err)
			}
			if strings.Contains(doc, AccentPlaceholder) || strings.Contains(doc, BodyPlaceholder) {
				t.Error("placeholder left in document")
			}
			if !strings.Contains(doc, "--accent: #ff0000;") {
				t.Error("accent color not substituted")
			}
			if !strings.Contains(doc, "Jane Doe") {
				t.Error("body not substituted")
			}
		})
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	a := newTestAssembler(t)
	r := sampleResume()
	first, err := a.Assemble("classic", "#123456", r)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	second, err := a.Assemble("classic", "#123456", r)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if first != second {
		t.Error("identical inputs produced different documents")
	}
}

func TestAssemble_UnknownLayoutIsDefault(t *testing.T) {
	a := newTestAssembler(t)
	r := sampleResume()
	want, err := a.Assemble("modern", "#2563eb", r)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for _, name := range []string{"", "nonexistent", "MODERN"} {
		got, err := a.Assemble(name, "#2563eb", r)
		if err != nil {
			t.Fatalf("Assemble(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("Assemble(%q) differs from the modern layout", name)
		}
	}
}

func TestAssemble_CreativeUsesSidebar(t *testing.T) {
	a := newTestAssembler(t)
	out, err := a.Assemble("creative", "", sampleResume())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Find(".wrapper > .sidebar").Length() != 1 || doc.Find(".wrapper > .main").Length() != 1 {
		t.Errorf("creative document lacks sidebar and main inside wrapper")
	}
	if doc.Find(".resume-root").Length() != 0 {
		t.Error("creative document uses the standard body")
	}
	if !strings.Contains(out, "--accent: "+model.DefaultAccent+";") {
		t.Error("empty accent should fall back to the default color")
	}
}

func TestAssemble_StandardLayouts(t *testing.T) {
	a := newTestAssembler(t)
	for _, name := range []string{"modern", "classic"} {
		out, err := a.Assemble(name, "#000", sampleResume())
		if err != nil {
			t.Fatalf("Assemble(%q): %v", name, err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if doc.Find("body > .resume-root").Length() != 1 {
			t.Errorf("%s: body does not hold the standard fragment", name)
		}
		if doc.Find("head style").Length() != 1 {
			t.Errorf("%s: missing stylesheet", name)
		}
	}
}

func TestAssemble_PlaceholderTextInContent(t *testing.T) {
	a := newTestAssembler(t)
	r := model.Resume{
		Name:    "Eve " + BodyPlaceholder,
		Summary: "likes " + AccentPlaceholder,
	}
	out, err := a.Assemble("modern", "#abcdef", r)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !strings.Contains(out, "Eve "+BodyPlaceholder) {
		t.Error("body placeholder text in user content was altered")
	}
	if !strings.Contains(out, "likes "+AccentPlaceholder) {
		t.Error("accent placeholder text in user content was substituted")
	}
	if strings.Count(out, "#abcdef") != 1 {
		t.Errorf("accent color substituted %d times, want 1", strings.Count(out, "#abcdef"))
	}
}

func TestAssemble_AccentCannotBreakStyle(t *testing.T) {
	a := newTestAssembler(t)
	out, err := a.Assemble("modern", "red;}</style><script>alert(1)</script>", sampleResume())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if strings.Contains(out, "<script>") || strings.Count(out, "</style>") != 1 {
		t.Errorf("accent escaped the style element:\n%s", out[:400])
	}
}
