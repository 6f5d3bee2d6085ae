package noteid_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/jotapp/jot/pkg/noteid"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"passthrough", "note_1700000000000", "note_1700000000000"},
		{"traversal stripped", "../../etc/passwd", "etcpasswd"},
		{"separators stripped", `a/b\c`, "abc"},
		{"dot stripped", "note.md", "notemd"},
		{"whitespace stripped", " my note ", "mynote"},
		{"unicode stripped", "café", "caf"},
		{"keeps hyphen and underscore", "a-b_c", "a-b_c"},
		{"only symbols", "!!!", "note"},
		{"empty", "", "note"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := noteid.Sanitize(tc.in); got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

var safeID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// TestSanitizeProperties checks Sanitize against a reference filter for
// arbitrary inputs: never empty, only safe characters, fallback exactly
// when no safe character exists, and idempotent.
func TestSanitizeProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.String().Draw(rt, "in")
		out := noteid.Sanitize(in)

		if out == "" {
			rt.Fatalf("Sanitize(%q) returned empty string", in)
		}
		if !safeID.MatchString(out) {
			rt.Fatalf("Sanitize(%q) = %q contains unsafe characters", in, out)
		}

		var want strings.Builder
		for _, r := range in {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
				want.WriteRune(r)
			}
		}
		if want.Len() == 0 {
			if out != noteid.Fallback {
				rt.Fatalf("Sanitize(%q) = %q, want fallback %q", in, out, noteid.Fallback)
			}
		} else if out != want.String() {
			rt.Fatalf("Sanitize(%q) = %q, want %q", in, out, want.String())
		}

		if again := noteid.Sanitize(out); again != out {
			rt.Fatalf("Sanitize not idempotent: %q -> %q -> %q", in, out, again)
		}
	})
}

func TestTimestampGenerator(t *testing.T) {
	fixed := time.UnixMilli(1700000000123)
	g := noteid.TimestampGenerator{Now: func() time.Time { return fixed }}

	got := g.NewID()
	if got != "note_1700000000123" {
		t.Errorf("NewID() = %q, want note_1700000000123", got)
	}
	if noteid.Sanitize(got) != got {
		t.Errorf("generated id %q is not filename-safe", got)
	}
}

func TestRandomGenerator(t *testing.T) {
	g := noteid.RandomGenerator{}

	a, b := g.NewID(), g.NewID()
	if a == b {
		t.Errorf("two generated ids are equal: %q", a)
	}
	for _, id := range []string{a, b} {
		if !strings.HasPrefix(id, "note_") {
			t.Errorf("id %q missing note_ prefix", id)
		}
		if noteid.Sanitize(id) != id {
			t.Errorf("generated id %q is not filename-safe", id)
		}
	}
}
