package cmd

import (
	"io"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
		{"yes with spaces", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			result := confirm(strings.NewReader(tt.input), &out, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			if out.String() != "Test? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	// Test with empty reader (simulates EOF)
	if confirm(strings.NewReader(""), io.Discard, "Test?") {
		t.Error("confirm(EOF) = true, want false")
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	if confirm(&errorReader{}, io.Discard, "Test?") {
		t.Error("confirm(error) = true, want false")
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

func TestClean_Aborted(t *testing.T) {
	useTestConfig(t, "http://127.0.0.1:1")

	out, _, err := runCommand(t, cleanCmd, "n\n")
	if err != nil {
		t.Fatalf("clean error = %v", err)
	}
	if !strings.Contains(out, "Remove all switchboard debug logs? [y/N]: ") {
		t.Errorf("missing prompt in %q", out)
	}
	if !strings.Contains(out, "Aborted.") {
		t.Errorf("expected Aborted., got %q", out)
	}
}
