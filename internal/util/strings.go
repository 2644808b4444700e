package util

import "strings"

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitResourceIDs splits a comma-separated resource id list, trimming
// surrounding whitespace from each element. Empty elements are kept so the
// builder can report their position; duplicates are not filtered.
func SplitResourceIDs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	ids := make([]string, len(parts))
	for i, p := range parts {
		ids[i] = strings.TrimSpace(p)
	}
	return ids
}
