package model

import "strings"

// Skills are edited as one comma-separated text input. Splitting and joining
// must round-trip exactly, including empty tokens: the form relies on an
// empty trailing token to let the user delete the last skill. Empty tokens
// are filtered only at render time.

// SplitSkills splits raw comma-separated input into the stored skill list.
// Tokens are trimmed; empty tokens are preserved.
func SplitSkills(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// JoinSkills reassembles the stored list into the text-input form.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// RenderSkills returns the non-empty subset for output. The stored list is
// untouched.
func RenderSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
