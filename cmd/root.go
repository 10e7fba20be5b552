package cmd

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/switchboard/internal/app"
	"github.com/zhubert/switchboard/internal/backend"
	"github.com/zhubert/switchboard/internal/config"
	"github.com/zhubert/switchboard/internal/logger"
	"github.com/zhubert/switchboard/internal/store"
)

var (
	debugMode             bool
	quietMode             bool
	ephemeral             bool
	configFile            string
	version, commit, date string
)

// ErrReported is returned by commands that already printed their failure.
// Callers should exit non-zero without printing it again.
var ErrReported = errors.New("error already reported")

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "switchboard",
	Short: "Terminal chat client that routes questions to search, upload and query backends",
	Long: `Switchboard is a terminal chat client. Each message is routed by its prefix
(web:, db:, file:) to a web search, database query or file upload backend;
everything else goes to RAG search. The conversation and the color theme are
saved locally and restored on the next start.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the conversation in memory only")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/.switchboard/config.json)")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("switchboard %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("switchboard %s\n", version)
}

// loadConfig reads the config from --config or the default location
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFrom(configFile)
	}
	return config.Load()
}

// openStore opens the bbolt store named by cfg, or a memory store with --ephemeral
func openStore(cfg *config.Config) (*store.Store, error) {
	if ephemeral {
		logger.WithComponent("cmd").Info("using in-memory store")
		return store.NewMemory(), nil
	}
	path, err := cfg.GetStorePath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// newClient builds the backend client from cfg
func newClient(cfg *config.Config) *backend.Client {
	return backend.New(cfg.GetBaseURL(), backend.WithHeaders(cfg.GetHeaders()))
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	defer st.Close()

	// Create and run the app
	m := app.New(cfg, st, newClient(cfg), version)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
