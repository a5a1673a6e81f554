// Package prompt renders the static story-writing masterclass prompts.
//
// Each template carries exactly one named placeholder. Rendering substitutes
// the caller's parameter everywhere the placeholder appears; an empty or
// whitespace parameter falls back to the template default. Parameter content
// is never validated, it is interpolated verbatim.
package prompt

import "strings"

// Template is a static prompt with a single named placeholder.
type Template struct {
	Name                string
	Description         string
	Argument            string
	ArgumentDescription string
	Default             string
	text                string
}

// Render substitutes param into the template, using the default when param
// is empty after trimming.
func (t Template) Render(param string) string {
	value := strings.TrimSpace(param)
	if value == "" {
		value = t.Default
	}
	return strings.ReplaceAll(t.text, "{"+t.Argument+"}", value)
}

// All returns every registered template in registration order.
func All() []Template {
	return []Template{Adventure, Mystery, CharacterDriven}
}
