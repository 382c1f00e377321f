package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSlug derives a URL slug from a title: lowercase, runs of anything
// outside [a-z0-9] collapse to a single hyphen, edges trimmed.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		if r == ' ' || r == '_' || r == '.' || r == '/' {
			return '-'
		}
		return -1
	}, slug)

	slug = strings.Trim(slug, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return slug
}

// PlaceholderSlug builds a slug for a freshly materialized draft. It derives
// from the title when one exists, otherwise falls back to a random suffix so
// the unique index never rejects the draft row.
func PlaceholderSlug(title string) string {
	base := GenerateSlug(title)
	suffix := strings.Split(uuid.NewString(), "-")[0]
	if base == "" {
		return "draft-" + suffix
	}
	return base + "-" + suffix
}
