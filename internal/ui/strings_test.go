package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"", 5, ""},
		{"Max", 5, "Max"},
		{"Max", 3, "Max"},
		{"Maximus", 4, "Max…"},
		{"Maximus", 1, "…"},
		{"Maximus", 0, ""},
		{"Señorita", 4, "Señ…"},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.max); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("Max", 6); got != "Max   " {
		t.Errorf("padRight short = %q", got)
	}
	if got := padRight("Maximus", 4); got != "Max…" {
		t.Errorf("padRight long = %q", got)
	}
	if got := padRight("Luna", 4); got != "Luna" {
		t.Errorf("padRight exact = %q", got)
	}
}
