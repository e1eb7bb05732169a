package usecase

import (
	"strings"

	"resume-builder/internal/model"
)

// Form is the form-like input a resume is built from: scalar lookups plus
// repeated-field lookups.
type Form interface {
	Get(key string) string
	List(key string) []string
}

// Values is a Form backed by a plain multi-value map, as produced by
// urlencoded or multipart form parsing.
type Values map[string][]string

// Get returns the first value for key, or "".
func (v Values) Get(key string) string {
	if vs := v[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// List returns all values for key. List keys conventionally carry a "[]"
// suffix; when that key is absent the bare name is tried as well.
func (v Values) List(key string) []string {
	if vs, ok := v[key]; ok {
		return vs
	}
	return v[strings.TrimSuffix(key, "[]")]
}

// ValuesFromMap converts a decoded JSON object into Values. Strings become
// single values and arrays keep their string elements; anything else is
// dropped, so a malformed payload degrades to empty fields.
func ValuesFromMap(m map[string]interface{}) Values {
	out := Values{}
	for k, raw := range m {
		switch t := raw.(type) {
		case string:
			out[k] = []string{t}
		case []interface{}:
			vs := make([]string, 0, len(t))
			for _, it := range t {
				if s, ok := it.(string); ok {
					vs = append(vs, s)
				}
			}
			out[k] = vs
		case []string:
			out[k] = t
		}
	}
	return out
}

// NewResume normalizes form input into the canonical record. It never fails:
// missing fields become empty strings, and repeated-section entries whose
// required field is blank are dropped.
func NewResume(form Form) model.Resume {
	field := func(key string) string { return strings.TrimSpace(form.Get(key)) }

	r := model.Resume{
		Name:         field("name"),
		Email:        field("email"),
		Phone:        field("phone"),
		Location:     field("location"),
		LinkedIn:     field("linkedin"),
		Website:      field("website"),
		Summary:      field("summary"),
		Skills:       field("skills"),
		Languages:    field("languages"),
		TemplateName: field("template"),
		AccentColor:  field("color"),
	}
	if r.TemplateName == "" {
		r.TemplateName = model.DefaultTemplate
	}
	if r.AccentColor == "" {
		r.AccentColor = model.DefaultAccent
	}

	zip(form, []string{"exp_title[]", "exp_company[]", "exp_duration[]", "exp_description[]"}, func(v []string) {
		r.Experience = append(r.Experience, model.ExperienceEntry{Title: v[0], Company: v[1], Duration: v[2], Description: v[3]})
	})
	zip(form, []string{"edu_degree[]", "edu_institution[]", "edu_year[]"}, func(v []string) {
		r.Education = append(r.Education, model.EducationEntry{Degree: v[0], Institution: v[1], Year: v[2]})
	})
	zip(form, []string{"proj_name[]", "proj_description[]", "proj_link[]"}, func(v []string) {
		r.Projects = append(r.Projects, model.ProjectEntry{Name: v[0], Description: v[1], Link: v[2]})
	})
	zip(form, []string{"cert_name[]", "cert_issuer[]", "cert_year[]"}, func(v []string) {
		r.Certifications = append(r.Certifications, model.CertificationEntry{Name: v[0], Issuer: v[1], Year: v[2]})
	})

	return r
}

// zip walks the primary list (keys[0]) by position and calls emit with the
// trimmed values of every list at that position. Shorter parallel lists
// contribute "". Positions with a blank primary value are skipped.
func zip(form Form, keys []string, emit func([]string)) {
	lists := make([][]string, len(keys))
	for i, k := range keys {
		lists[i] = form.List(k)
	}
	for i := range lists[0] {
		row := make([]string, len(keys))
		for j, l := range lists {
			if i < len(l) {
				row[j] = strings.TrimSpace(l[i])
			}
		}
		if row[0] == "" {
			continue
		}
		emit(row)
	}
}
