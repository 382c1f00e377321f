package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title    string
		expected string
	}{
		{"Backwater Cruise", "backwater-cruise"},
		{"Taj Mahal Tour!", "taj-mahal-tour"},
		{"  Munnar   Hills  ", "munnar-hills"},
		{"Kochi/Fort Walk", "kochi-fort-walk"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER case_mix.ed", "upper-case-mix-ed"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.expected, GenerateSlug(tc.title))
		})
	}
}

func TestPlaceholderSlug(t *testing.T) {
	slug := PlaceholderSlug("")
	assert.True(t, strings.HasPrefix(slug, "draft-"))
	assert.Greater(t, len(slug), len("draft-"))

	slug = PlaceholderSlug("Munnar Hills")
	assert.True(t, strings.HasPrefix(slug, "munnar-hills-"))

	// Two placeholders for the same title never collide.
	assert.NotEqual(t, PlaceholderSlug("Munnar Hills"), PlaceholderSlug("Munnar Hills"))
}
