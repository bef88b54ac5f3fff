// Package configcmd implements the config management commands.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/infrastructure/config"
)

var outputDir string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage console configuration",
	}

	cmd.AddCommand(newInitCommand())
	return cmd
}

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(outputDir, "config.yaml")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", path)
			}

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return err
			}

			data, err := yaml.Marshal(config.Default())
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}

			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "dir", "configs", "Directory to write the config file into")

	return cmd
}
