package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli/configcmd"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli/conversations"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli/notify"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli/templates"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli/users"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/interfaces/cli/workflows"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "uacc",
		Version: version.Version,
		Short:   "Operations console for the notification platform",
		Long: `uacc is a terminal operations console for the multi-channel notification
platform: manage the user directory, author message templates, broadcast
notifications and review the conversation timeline. All state lives on the
backend; the console is a pure client over its API.`,
	}

	rootCmd.AddCommand(
		users.NewCommand(),
		templates.NewCommand(),
		notify.NewCommand(),
		conversations.NewCommand(),
		workflows.NewCommand(),
		configcmd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
