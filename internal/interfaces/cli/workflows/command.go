// Package workflows implements the workflow directory commands.
package workflows

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/directory"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli"
)

var (
	name        string
	description string
	wfType      string

	stepWorkflowID    int
	stepOrder         int
	stepTriggerType   string
	stepTemplateID    int
	stepExpected      string
	stepNextOnSuccess int
	stepNextOnFailure int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workflows",
		Short: "Manage messaging workflows",
	}

	cmd.AddCommand(newListCommand(), newCreateCommand(), newAddStepCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all workflows",
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
		Short: "Create a new workflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.Setup()
			if err != nil {
				return err
			}

			store := newStore(client)
			created, err := store.Create(cmd.Context(), api.WorkflowDraft{
				Name:        name,
				Description: description,
				Type:        wfType,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created workflow %d (%s)\n", created.ID, created.Name)
			render(store.Items())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Workflow name")
	cmd.Flags().StringVar(&description, "description", "", "Workflow description")
	cmd.Flags().StringVar(&wfType, "type", "", "Workflow type (e.g. ONBOARDING, SALARY_REMINDER)")

	return cmd
}

func newAddStepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-step",
		Short: "Attach a step to a workflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.Setup()
			if err != nil {
				return err
			}

			draft := api.WorkflowStepDraft{
				WorkflowID:     stepWorkflowID,
				StepOrder:      stepOrder,
				TriggerType:    stepTriggerType,
				ExpectedIntent: stepExpected,
			}
			if stepTemplateID > 0 {
				draft.TemplateID = &stepTemplateID
			}
			if stepNextOnSuccess > 0 {
				draft.NextStepOnSuccess = &stepNextOnSuccess
			}
			if stepNextOnFailure > 0 {
				draft.NextStepOnFailure = &stepNextOnFailure
			}

			result, err := client.CreateWorkflowStep(cmd.Context(), draft)
			if err != nil {
				return err
			}

			fmt.Printf("created step %d: %s\n", result.ID, result.Message)
			return nil
		},
	}

	cmd.Flags().IntVar(&stepWorkflowID, "workflow", 0, "Workflow id")
	cmd.Flags().IntVar(&stepOrder, "order", 0, "Step order within the workflow")
	cmd.Flags().StringVar(&stepTriggerType, "trigger", "TIME_BASED", "Trigger type (TIME_BASED, EVENT_BASED, REPLY_BASED)")
	cmd.Flags().IntVar(&stepTemplateID, "template", 0, "Template id to send at this step")
	cmd.Flags().StringVar(&stepExpected, "expected-intent", "", "Intent expected in the reply (e.g. COMPLETION)")
	cmd.Flags().IntVar(&stepNextOnSuccess, "next-on-success", 0, "Next step id on success")
	cmd.Flags().IntVar(&stepNextOnFailure, "next-on-failure", 0, "Next step id on failure")

	return cmd
}

func newStore(client *api.Client) *directory.Store[api.Workflow, api.WorkflowDraft] {
	return directory.NewStore("workflow", client.ListWorkflows, client.CreateWorkflow)
}

func render(items []api.Workflow) {
	w := cli.NewTable(os.Stdout)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tACTIVE\tDESCRIPTION")
	for _, wf := range items {
		active := "no"
		if wf.IsActive {
			active = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			wf.ID, wf.Name, cli.StringOrDash(wf.Type), active, cli.StringOrDash(wf.Description))
	}
	w.Flush()
}
