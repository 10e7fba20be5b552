package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/switchboard/internal/store"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the saved color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

// themeName is the short name printed for a theme
func themeName(t store.Theme) string {
	return strings.TrimSuffix(string(t), "_mode")
}

func runTheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	defer st.Close()

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, themeName(st.LoadTheme()))
		return nil
	}

	var next store.Theme
	if args[0] == "toggle" {
		next, err = st.ToggleTheme()
	} else {
		t, ok := store.ParseTheme(args[0])
		if !ok {
			return fmt.Errorf("unknown theme %q (want light, dark or toggle)", args[0])
		}
		next, err = t, st.SaveTheme(t)
	}
	if err != nil {
		return fmt.Errorf("error saving theme: %w", err)
	}

	fmt.Fprintln(out, themeName(next))
	return nil
}
