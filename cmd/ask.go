package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/switchboard/internal/conversation"
	"github.com/zhubert/switchboard/internal/router"
	"github.com/zhubert/switchboard/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Send one message and print the reply",
	Long: `Routes a single message exactly as the chat window would, prints the reply
and appends the exchange to the saved conversation.

Examples:
  switchboard ask "web: latest developments in solid-state batteries"
  switchboard ask db: how many orders shipped last month?`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

// printRenderer writes replies to out and error bubbles to errOut. The
// outgoing message and the loading state are not echoed.
type printRenderer struct {
	out     io.Writer
	errOut  io.Writer
	entries int
}

func (r *printRenderer) AppendMessage(string, conversation.Role, conversation.Flags) conversation.Handle {
	r.entries++
	return conversation.Handle(r.entries - 1)
}

func (r *printRenderer) ReplaceContent(_ conversation.Handle, text string) {
	fmt.Fprintln(r.out, text)
}

func (r *printRenderer) MarkError(_ conversation.Handle, msg string) {
	fmt.Fprintln(r.errOut, "error: "+msg)
}

func (r *printRenderer) RenderHistory([]store.MessageRecord) {}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer := &printRenderer{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
	controller := conversation.New(router.New(cfg.GetRoutingMode()), newClient(cfg), st, renderer)

	res, err := controller.Exchange(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if res.Failed() {
		// printRenderer has already shown the error bubble
		return fmt.Errorf("%w: %v", ErrReported, res.Err)
	}
	return nil
}
