package ui

import (
	"testing"

	"github.com/valpere/perekaz/internal"
)

func TestLengthOptions_MapToDistinctHints(t *testing.T) {
	seen := make(map[internal.TargetLength]string)
	for _, option := range lengthOptions {
		length := targetLengthFromChoice(option)
		if prev, dup := seen[length]; dup {
			t.Errorf("options %q and %q map to the same hint %q", prev, option, length)
		}
		seen[length] = option
	}
}

func TestTargetLengthFromChoice(t *testing.T) {
	tests := []struct {
		choice string
		want   internal.TargetLength
	}{
		{"short", internal.LengthShort},
		{"medium (same length)", internal.LengthMedium},
		{"long", internal.LengthLong},
	}
	for _, tt := range tests {
		if got := targetLengthFromChoice(tt.choice); got != tt.want {
			t.Errorf("targetLengthFromChoice(%q) = %q, want %q", tt.choice, got, tt.want)
		}
	}
}
