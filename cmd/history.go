package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/switchboard/internal/ui"
)

var (
	historyClear bool
	skipConfirm  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print or clear the saved conversation",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the saved conversation")
	historyCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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
	records := st.LoadLog()

	if !historyClear {
		if len(records) == 0 {
			fmt.Fprintln(out, "No saved conversation.")
			return nil
		}
		for i, r := range records {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s: %s\n%s: %s\n", ui.OutgoingLabel, r.UserMessage, ui.IncomingLabel, r.APIResponse)
		}
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "Nothing to clear.")
		return nil
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Delete %d saved exchange(s)?", len(records))) {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := st.ClearLog(); err != nil {
		return fmt.Errorf("error clearing history: %w", err)
	}
	fmt.Fprintf(out, "Cleared %d exchange(s).\n", len(records))
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
