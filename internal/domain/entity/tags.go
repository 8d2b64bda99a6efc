package entity

import "strings"

// ParseTags derives an ordered tag sequence from a comma-delimited input string.
// Each segment is trimmed of surrounding whitespace; empty segments are dropped.
//
// Example:
//
//	ParseTags("paris, france,, food") // → ["paris", "france", "food"]
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags is the inverse presentation of ParseTags, used to seed the raw
// tags input when editing a persisted blog.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
