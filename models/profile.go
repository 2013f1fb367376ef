package models

import "strings"

// Profile is the server-owned public profile. Optional fields are pointers so
// the client can tell "absent" from "empty" when rendering and patching.
type Profile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Headline    *string      `json:"headline,omitempty"`
	Location    *string      `json:"location,omitempty"`
	About       *string      `json:"about,omitempty"`
	PhotoURL    *string      `json:"photoUrl,omitempty"`
	Experiences []Experience `json:"experiences,omitempty"`
	Educations  []Education  `json:"educations,omitempty"`
	Skills      []Skill      `json:"skills,omitempty"`
}

// ProfileUpdate is the PATCH /profile/me body. Nil fields are left untouched
// by the server.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Headline *string `json:"headline,omitempty"`
	Location *string `json:"location,omitempty"`
	About    *string `json:"about,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// Experience is a single work history entry.
type Experience struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    *string `json:"location,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     bool    `json:"current"`
	Description *string `json:"description,omitempty"`
}

// Education is a single education history entry.
type Education struct {
	ID          string  `json:"id,omitempty"`
	School      string  `json:"school"`
	Degree      string  `json:"degree"`
	Field       *string `json:"field,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     bool    `json:"current"`
	Description *string `json:"description,omitempty"`
}

// Skill is a named skill attached to a profile.
type Skill struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// StringPtr returns nil for an empty string and a pointer to s otherwise.
// Used when turning form inputs into optional DTO fields.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DateOnly trims an ISO timestamp to its date part ("2024-01-15T00:00:00Z"
// becomes "2024-01-15").
func DateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}
