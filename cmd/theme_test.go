package cmd

import (
	"testing"
)

func TestTheme(t *testing.T) {
	useTestConfig(t, "http://127.0.0.1:1")

	steps := []struct {
		args []string
		want string
	}{
		{nil, "dark\n"},
		{[]string{"light"}, "light\n"},
		{nil, "light\n"},
		{[]string{"toggle"}, "dark\n"},
		{[]string{"toggle"}, "light\n"},
		{[]string{"dark_mode"}, "dark\n"},
		{nil, "dark\n"},
	}

	for _, s := range steps {
		out, _, err := runCommand(t, themeCmd, "", s.args...)
		if err != nil {
			t.Fatalf("theme %v error = %v", s.args, err)
		}
		if out != s.want {
			t.Errorf("theme %v = %q, want %q", s.args, out, s.want)
		}
	}
}

func TestTheme_Unknown(t *testing.T) {
	useTestConfig(t, "http://127.0.0.1:1")

	if _, _, err := runCommand(t, themeCmd, "", "purple"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}
