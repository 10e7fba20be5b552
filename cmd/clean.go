package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/switchboard/internal/logger"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove switchboard debug logs",
	Long: `Removes the debug log files switchboard writes to /tmp. The saved
conversation is left alone; use "switchboard history --clear" for that.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(cmd.InOrStdin(), out, "Remove all switchboard debug logs?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// Close our own handle first so the active log can be removed too
	logger.Close()

	n, err := logger.ClearLogs()
	if err != nil {
		return fmt.Errorf("error clearing logs: %w", err)
	}
	if n == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}
	fmt.Fprintf(out, "Removed %d log file(s).\n", n)
	return nil
}
