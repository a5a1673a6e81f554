package story

import "strings"

// Extension is the recognized story file extension.
const Extension = ".md"

// Slugify derives the story filename from a human-readable title: lowercase,
// apostrophes dropped, every run of other non-ASCII-alphanumeric characters
// collapsed to a single underscore, leading and trailing underscores
// stripped, ".md" appended. The empty string is returned when the title
// contains no usable characters.
func Slugify(title string) string {
	var b strings.Builder
	pendingSeparator := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSeparator && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSeparator = false
			b.WriteRune(r)
		case r == '\'':
			// "Jack's" reads as "jacks", not "jack_s".
		default:
			pendingSeparator = true
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return b.String() + Extension
}
