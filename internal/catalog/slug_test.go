package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Cold Start", "cold_start"},
		{"apostrophe removed", "Raider's Toolkit", "raiders_toolkit"},
		{"typographic apostrophe removed", "Raider’s Toolkit", "raiders_toolkit"},
		{"punctuation stripped", "Operation: Dry Run!", "operation_dry_run"},
		{"whitespace collapsed", "  Spaced   Out  ", "spaced_out"},
		{"digits kept", "Relay 7B", "relay_7b"},
		{"unicode letters kept", "Café Crème", "café_crème"},
		{"empty", "", ""},
		{"only punctuation", "!?.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

// TestSlugify_Collision documents that distinct titles can share a slug;
// the sorter resolves the collision, not Slugify.
func TestSlugify_Collision(t *testing.T) {
	assert.Equal(t, Slugify("Raider's Toolkit"), Slugify("Raiders Toolkit"))
}
