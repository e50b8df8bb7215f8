package prompt

import (
	"strings"
	"testing"

	"github.com/valpere/perekaz/internal"
)

const description = "A premium leather wallet with RFID protection."

func TestBuild_Deterministic(t *testing.T) {
	a := Build(description, internal.LengthShort)
	b := Build(description, internal.LengthShort)

	if a != b {
		t.Errorf("expected identical output for identical input:\n%+v\n%+v", a, b)
	}
}

func TestBuild_UserMessageCarriesDescription(t *testing.T) {
	msgs := Build(description, "")

	if !strings.Contains(msgs.User, description) {
		t.Errorf("expected description verbatim in user message, got %q", msgs.User)
	}
}

func TestBuild_SystemMessageInstruction(t *testing.T) {
	msgs := Build(description, "")

	for _, want := range []string{"simple, clear language", "Preserve the meaning", "Do not introduce facts"} {
		if !strings.Contains(msgs.System, want) {
			t.Errorf("expected %q in system message", want)
		}
	}
}

func TestBuild_LengthVariants(t *testing.T) {
	variants := map[internal.TargetLength]string{
		"":                    "same length",
		internal.LengthShort:  "shorter",
		internal.LengthMedium: "same length",
		internal.LengthLong:   "longer",
	}

	systems := make(map[string]bool)
	for length, want := range variants {
		msgs := Build(description, length)
		if !strings.Contains(msgs.System, want) {
			t.Errorf("length %q: expected %q in system message %q", length, want, msgs.System)
		}
		systems[msgs.System] = true
	}

	// short, medium and long are distinct; the default collapses onto medium.
	if len(systems) != 3 {
		t.Errorf("expected 3 distinct system messages, got %d", len(systems))
	}
}

func TestBuild_DefaultMatchesMedium(t *testing.T) {
	if Build(description, "") != Build(description, internal.LengthMedium) {
		t.Error("expected the empty hint to behave like medium")
	}
}

func TestBuild_OnlySystemMessageVariesWithLength(t *testing.T) {
	a := Build(description, internal.LengthShort)
	b := Build(description, internal.LengthLong)

	if a.User != b.User {
		t.Error("expected user message independent of the length hint")
	}
	if a.System == b.System {
		t.Error("expected system message to vary with the length hint")
	}
}
