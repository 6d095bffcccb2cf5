package urls

import "testing"

func TestDisplay(t *testing.T) {
	tests := map[string]string{
		"https://github.com/muurk/wordhunt": "github.com/muurk/wordhunt",
		"http://localhost:8080":             "localhost:8080",
		"github.com/x":                      "github.com/x",
		"https://":                          "https://",
	}
	for in, want := range tests {
		if got := Display(in); got != want {
			t.Errorf("Display(%q) = %q, want %q", in, got, want)
		}
	}
}
