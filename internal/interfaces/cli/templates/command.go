// Package templates implements the message template directory commands.
package templates

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/directory"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/utils/textutil"
)

var (
	name     string
	channel  string
	language string
	body     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage message templates",
	}

	cmd.AddCommand(newListCommand(), newCreateCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.Setup()
			if err != nil {
				return err
			}

			store := newStore(client)
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}
			render(store.Items())
			return nil
		},
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new template",
		Long: `Create a new message template. The body may contain {placeholder}
tokens which the server substitutes with send-time variables, e.g.
"Hi {name}, salary {salary_amount} due on {due_date}".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.Setup()
			if err != nil {
				return err
			}

			store := newStore(client)
			created, err := store.Create(cmd.Context(), api.TemplateDraft{
				Name:     name,
				Channel:  api.Channel(channel),
				Language: language,
				Body:     body,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created template %d (%s)\n", created.ID, created.Name)
			render(store.Items())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name")
	cmd.Flags().StringVar(&channel, "channel", "WHATSAPP_TEXT", "Channel (WHATSAPP_TEXT, WHATSAPP_VOICE, EMAIL)")
	cmd.Flags().StringVar(&language, "language", "en", "Template language (en, hi, kn, ne)")
	cmd.Flags().StringVar(&body, "body", "", "Template body with {placeholder} tokens")

	return cmd
}

func newStore(client *api.Client) *directory.Store[api.Template, api.TemplateDraft] {
	return directory.NewStore("template", client.ListTemplates, client.CreateTemplate)
}

func render(items []api.Template) {
	w := cli.NewTable(os.Stdout)
	fmt.Fprintln(w, "ID\tNAME\tCHANNEL\tLANG\tBODY")
	for _, t := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, t.Channel, t.Language, textutil.Truncate(t.Body, 60))
	}
	w.Flush()
}
