package types

import "strings"

// ParseSkills splits a comma-separated skills string into a list.
//
// Surrounding whitespace is trimmed from every token and tokens that end
// up empty are dropped. Duplicates and order are kept as typed:
//
//	"Go, Rust ,  ,Python" → ["Go", "Rust", "Python"]
//
// The result is never nil.
func ParseSkills(raw string) []string {
	skills := make([]string, 0)

	for _, part := range strings.Split(raw, ",") {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}

	return skills
}
