// Package conversations implements the conversation timeline command.
package conversations

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/utils/textutil"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/timeline"
)

const colorReset = "\033[0m"

var userID int

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "Review the conversation timeline",
	}

	cmd.AddCommand(newListCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inbound and outbound messages, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.Setup()
			if err != nil {
				return err
			}

			tl := timeline.New(client, api.ConversationListOptions{UserID: userID})
			if err := tl.Refresh(cmd.Context()); err != nil {
				return err
			}
			render(tl.Items())
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "Only show messages for this user id")

	return cmd
}

func render(items []api.Conversation) {
	if len(items) == 0 {
		fmt.Println("No messages yet. Trigger a notification to see activity here.")
		return
	}

	w := cli.NewTable(os.Stdout)
	fmt.Fprintln(w, "ID\tUSER\tDIR\tCHANNEL\tMESSAGE\tLANG\tINTENT\tSENTIMENT\tTIME")
	for _, c := range items {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s%s%s\t%s\n",
			c.ID, c.UserID,
			timeline.DirectionBadge(c.Direction),
			c.Channel,
			textutil.Truncate(timeline.MessageText(c), 40),
			cli.StringOrDash(c.Language),
			timeline.IntentBadge(c),
			timeline.SentimentColor(c.Sentiment), c.Sentiment, colorReset,
			c.Timestamp.Local().Format(time.DateTime))
	}
	w.Flush()
}
