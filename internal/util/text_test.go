package util

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hackathon", 20, "hackathon"},
		{"exact", "hackathon", 9, "hackathon"},
		{"cut", "hackathon", 5, "hack…"},
		{"one cell", "hackathon", 1, "…"},
		{"no limit", "hackathon", 0, "hackathon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateText(tt.in, tt.max)
			assert.Equal(t, tt.want, got)
			if tt.max > 0 {
				assert.LessOrEqual(t, ansi.StringWidth(got), tt.max)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	lines := WrapText("Hack on scalable dApps and\n\nsmart contracts.", 12)
	assert.Equal(t, []string{"Hack on", "scalable", "dApps and", "smart", "contracts."}, lines)

	for _, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 12)
	}

	assert.Equal(t, []string{"supercalifragilistic"}, WrapText("supercalifragilistic", 5))
	assert.Empty(t, WrapText("   \n  ", 10))

	// runs of spaces collapse; no width keeps each paragraph on one line
	assert.Equal(t, []string{"team up", "and build"}, WrapText("team   up and  build", 9))
	assert.Equal(t, []string{"team up and build"}, WrapText("team up and build", 0))
}

func TestRule(t *testing.T) {
	assert.Equal(t, "───", Rule(3))
	assert.Empty(t, Rule(0))
}
