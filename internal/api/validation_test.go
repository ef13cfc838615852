package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTaskInput(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		priority    string
		want        []string
	}{
		{
			name:     "valid minimal input",
			title:    "Buy milk",
			priority: "medium",
			want:     nil,
		},
		{
			name:        "valid input at bounds",
			title:       strings.Repeat("t", 100),
			description: strings.Repeat("d", 500),
			priority:    "high",
			want:        nil,
		},
		{
			name:     "empty title",
			title:    "",
			priority: "low",
			want:     []string{"Title is required"},
		},
		{
			name:     "whitespace-only title",
			title:    "   \t  ",
			priority: "low",
			want:     []string{"Title is required"},
		},
		{
			name:     "whitespace-only title longer than the length bound",
			title:    strings.Repeat(" ", 150),
			priority: "low",
			want:     []string{"Title is required"},
		},
		{
			name:     "title too long",
			title:    strings.Repeat("t", 101),
			priority: "low",
			want:     []string{"Title must be 100 characters or less"},
		},
		{
			name:     "title trimmed before length check",
			title:    "  " + strings.Repeat("t", 100) + "  ",
			priority: "low",
			want:     nil,
		},
		{
			name:        "description too long",
			title:       "Valid",
			description: strings.Repeat("d", 501),
			priority:    "low",
			want:        []string{"Description must be 500 characters or less"},
		},
		{
			name:     "unknown priority",
			title:    "Valid",
			priority: "urgent",
			want:     []string{"Priority must be low, medium, or high"},
		},
		{
			name:     "priority normalized before checking",
			title:    "Valid",
			priority: "  HIGH ",
			want:     nil,
		},
		{
			name:        "all violations collected in rule order",
			title:       "",
			description: strings.Repeat("d", 600),
			priority:    "urgent",
			want: []string{
				"Title is required",
				"Description must be 500 characters or less",
				"Priority must be low, medium, or high",
			},
		},
		{
			name:        "long title and long description",
			title:       strings.Repeat("t", 101),
			description: strings.Repeat("d", 501),
			priority:    "medium",
			want: []string{
				"Title must be 100 characters or less",
				"Description must be 500 characters or less",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := validateTaskInput(tc.title, tc.description, tc.priority)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateTaskInputCountsCharactersNotBytes(t *testing.T) {
	// 100 multi-byte runes are within the bound even though the string is
	// 300 bytes long.
	title := strings.Repeat("中", 100)
	assert.Empty(t, validateTaskInput(title, "", "low"))

	assert.Equal(t,
		[]string{"Title must be 100 characters or less"},
		validateTaskInput(strings.Repeat("中", 101), "", "low"))
}
