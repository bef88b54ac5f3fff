// Package notify implements the broadcast composer command.
package notify

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/composer"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/directory"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli"
	apperrors "github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/errors"
)

var (
	channel    string
	templateID int
	userIDs    []int
	variables  string
	dryRun     bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Broadcast notifications",
	}

	cmd.AddCommand(newSendCommand())
	return cmd
}

func newSendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Compose and send a broadcast",
		Long: `Compose a notification from a channel, a template, a recipient set and
optional JSON variables, validate it, and send it to the backend. The raw
server response is printed for inspection.`,
		RunE: runSend,
	}

	cmd.Flags().StringVar(&channel, "channel", "WHATSAPP_TEXT", "Channel (WHATSAPP_TEXT, WHATSAPP_VOICE, EMAIL)")
	cmd.Flags().IntVar(&templateID, "template", 0, "Template id")
	cmd.Flags().IntSliceVar(&userIDs, "user", nil, "Recipient user id (repeatable)")
	cmd.Flags().StringVar(&variables, "variables", "", `Template variables as a JSON object, e.g. {"salary_amount": 8000}`)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and show the composed request without sending")

	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	if !api.Channel(channel).IsValid() {
		return apperrors.NewValidationError(apperrors.ReasonInvalidDraft,
			"unsupported channel "+channel,
			"expected WHATSAPP_TEXT, WHATSAPP_VOICE or EMAIL")
	}

	client, err := cli.Setup()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	// The composer consumes the user and template directories; both load
	// on entry so the selection can be shown against live data.
	users := directory.NewStore("user", client.ListUsers, client.CreateUser)
	templates := directory.NewStore("template", client.ListTemplates, client.CreateTemplate)
	if err := users.Load(ctx); err != nil {
		return err
	}
	if err := templates.Load(ctx); err != nil {
		return err
	}

	c := composer.New()
	c.SetChannel(api.Channel(channel))
	c.SetTemplate(templateID)
	c.SetVariablesText(variables)
	for _, id := range userIDs {
		c.ToggleRecipient(id)
	}

	renderSelection(c, users.Items(), templates.Items())

	if dryRun {
		req, err := c.BuildRequest()
		if err != nil {
			return err
		}
		fmt.Printf("\ncomposed request: channel=%s template_id=%d user_ids=%v variables=%v\n",
			req.Channel, req.TemplateID, req.UserIDs, req.Variables)
		return nil
	}

	result, err := c.Submit(ctx, client)
	if err != nil {
		return err
	}

	fmt.Println("\ndelivery result:")
	return cli.PrintJSON(result)
}

// renderSelection lists recipients with a visibly distinct selected marker
// and names the chosen template.
func renderSelection(c *composer.Composer, users []api.User, templates []api.Template) {
	w := cli.NewTable(os.Stdout)
	fmt.Fprintln(w, "SEL\tID\tNAME\tPHONE")
	for _, u := range users {
		marker := "[ ]"
		if c.IsSelected(u.ID) {
			marker = "[x]"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", marker, u.ID, u.Name, u.PhoneNumber)
	}
	w.Flush()

	for _, t := range templates {
		if t.ID == c.TemplateID() {
			fmt.Printf("template: %s (%s, %s)\n", t.Name, t.Channel, t.Language)
			return
		}
	}
	if c.TemplateID() != 0 {
		fmt.Printf("template: %d (not in directory)\n", c.TemplateID())
	}
}
