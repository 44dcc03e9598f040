package textsanitize_test

import (
	"testing"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/app/system/textsanitize"
)

func TestClean(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Sorted donations", "Sorted donations"},
		{"  padded  ", "padded"},
		{"<script>alert(1)</script>Helped out", "Helped out"},
		{"<b>bold</b> work", "bold work"},
		{"a < b and b > c", "a &lt; b and b &gt; c"},
		{"", ""},
	}
	for _, c := range cases {
		if got := textsanitize.Clean(c.in); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
