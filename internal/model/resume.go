// Package model holds the canonical resume record, built once per request
// from form input and consumed by the layout renderers. Empty strings mean
// "absent".
package model

import "strings"

// Defaults applied by the normalizer when the form leaves them out.
const (
	DefaultTemplate = "modern"
	DefaultAccent   = "#2563eb"
)

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

type Resume struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Skills    string `json:"skills,omitempty"`
	Languages string `json:"languages,omitempty"`

	TemplateName string `json:"template"`
	AccentColor  string `json:"color"`

	Experience     []ExperienceEntry    `json:"experience,omitempty"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Projects       []ProjectEntry       `json:"projects,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
}

// Contact returns the non-empty contact fields in display order:
// email, phone, location, linkedin, website.
func (r Resume) Contact() []string {
	out := make([]string, 0, 5)
	for _, v := range []string{r.Email, r.Phone, r.Location, r.LinkedIn, r.Website} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// DisplayName is the header name, with a placeholder for anonymous resumes.
func (r Resume) DisplayName() string {
	if r.Name == "" {
		return "Your Name"
	}
	return r.Name
}

// SkillList splits the raw skills text on commas, trimming each token and
// dropping empty ones.
func (r Resume) SkillList() []string {
	var out []string
	for _, s := range strings.Split(r.Skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
