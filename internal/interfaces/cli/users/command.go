// Package users implements the user directory commands.
package users

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/directory"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli"
)

var (
	name     string
	phone    string
	email    string
	userType string
	language string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the user directory",
	}

	cmd.AddCommand(newListCommand(), newCreateCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
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
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cli.Setup()
			if err != nil {
				return err
			}

			store := newStore(client)
			created, err := store.Create(cmd.Context(), api.UserDraft{
				Name:              name,
				PhoneNumber:       phone,
				Email:             email,
				UserType:          api.UserType(userType),
				PreferredLanguage: language,
			})
			if err != nil {
				return err
			}

			fmt.Printf("created user %d (%s)\n", created.ID, created.Name)
			render(store.Items())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address (optional)")
	cmd.Flags().StringVar(&userType, "type", "EMPLOYER", "User type (EMPLOYER or MAID)")
	cmd.Flags().StringVar(&language, "language", "en", "Preferred language (en, hi, kn, ne)")

	return cmd
}

func newStore(client *api.Client) *directory.Store[api.User, api.UserDraft] {
	return directory.NewStore("user", client.ListUsers, client.CreateUser)
}

func render(items []api.User) {
	w := cli.NewTable(os.Stdout)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\tTYPE\tLANG\tSTATUS")
	for _, u := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.PhoneNumber, cli.StringOrDash(u.Email),
			u.UserType, u.PreferredLanguage, u.Status)
	}
	w.Flush()
}
