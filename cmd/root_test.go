package cmd

import (
	"testing"
)

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestStoreFlags(t *testing.T) {
	for _, name := range []string{"ephemeral", "config"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"ask": false, "history": false, "theme": false, "clean": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInitConfig_DefaultDebugEnabled(t *testing.T) {
	// Save and restore package state
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = false

	// Should not panic
	initConfig()
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer SetVersionInfo(origVersion, origCommit, origDate)

	SetVersionInfo("1.2.3", "none", "unknown")
	if got, want := versionTemplate(), "switchboard 1.2.3\n"; got != want {
		t.Errorf("versionTemplate() = %q, want %q", got, want)
	}

	SetVersionInfo("1.2.3", "abc123", "2024-01-01")
	want := "switchboard 1.2.3\n  commit: abc123\n  built:  2024-01-01\n"
	if got := versionTemplate(); got != want {
		t.Errorf("versionTemplate() = %q, want %q", got, want)
	}
}

func TestOpenStore_Ephemeral(t *testing.T) {
	useTestConfig(t, "http://127.0.0.1:1")
	ephemeral = true

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	defer st.Close()

	if got := len(st.LoadLog()); got != 0 {
		t.Errorf("ephemeral store has %d records, want 0", got)
	}
}

func TestLoadConfig_FromFlag(t *testing.T) {
	storePath := useTestConfig(t, "http://backend.test:9000")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if got := cfg.GetBaseURL(); got != "http://backend.test:9000" {
		t.Errorf("base URL = %q", got)
	}
	if got, _ := cfg.GetStorePath(); got != storePath {
		t.Errorf("store path = %q, want %q", got, storePath)
	}
	if got := newClient(cfg).BaseURL(); got != "http://backend.test:9000" {
		t.Errorf("client base URL = %q", got)
	}
}
