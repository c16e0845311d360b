// Command chatcli talks to a running chat server from the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"owusu1946/portfolio-chat/client"
	"owusu1946/portfolio-chat/config"
	"owusu1946/portfolio-chat/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		endpoint string
		asHTML   bool
	)

	cmd := &cobra.Command{
		Use:   "chatcli [message]",
		Short: "Chat with the portfolio avatar",
		Long: `Send a single message when one is given as arguments, otherwise read
messages from stdin line by line. Type /reload to ask again and /quit to exit.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := client.Text
			if asHTML {
				format = client.HTML
			}
			conv := client.New(endpoint, client.OnToolCall(func(m types.Message) {
				config.Logger.WithField("tool", m.ToolName).Debug("Tool card received")
			}))

			if len(args) > 0 {
				return ask(cmd.Context(), conv, strings.Join(args, " "), cmd.OutOrStdout(), format)
			}
			return repl(cmd.Context(), conv, cmd.InOrStdin(), cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", envOr("CHAT_ENDPOINT", "http://localhost:8080/api/chat"), "chat API endpoint")
	cmd.Flags().BoolVar(&asHTML, "html", false, "render replies as HTML")
	cmd.AddCommand(newStatsCmd())
	return cmd
}

func ask(ctx context.Context, conv *client.Conversation, text string, out io.Writer, format client.Format) error {
	reply, err := conv.Send(ctx, text)
	if err != nil {
		return err
	}
	return client.Render(out, reply, format)
}

func repl(ctx context.Context, conv *client.Conversation, in io.Reader, out io.Writer, format client.Format) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		var (
			reply types.Message
			err   error
		)
		switch line {
		case "":
			continue
		case "/quit":
			return nil
		case "/reload":
			reply, err = conv.Reload(ctx)
		default:
			reply, err = conv.Send(ctx, line)
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		if err := client.Render(out, reply, format); err != nil {
			return errors.Wrap(err, "failed to print reply")
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
