package browser

import "testing"

func TestOpenRejectsUnsafeSchemes(t *testing.T) {
	for _, raw := range []string{
		"javascript:alert(1)",
		"file:///etc/passwd",
		"about:blank",
		"ftp://example.com",
	} {
		if err := Open(raw); err == nil {
			t.Errorf("Open(%q) should refuse non-http(s) schemes", raw)
		}
	}
}

func TestOpenCommandPerOS(t *testing.T) {
	tests := []struct {
		goos string
		name string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"windows", "rundll32"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		name, args := openCommand(tt.goos, "https://example.com")
		if name != tt.name {
			t.Errorf("openCommand(%q) = %q, want %q", tt.goos, name, tt.name)
		}
		if len(args) == 0 || args[len(args)-1] != "https://example.com" {
			t.Errorf("openCommand(%q) args = %v, URL missing", tt.goos, args)
		}
	}
}
