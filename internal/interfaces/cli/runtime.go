// Package cli provides shared bootstrap and rendering helpers for the uacc
// subcommands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/api"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/infrastructure/config"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/logger"
	"github.com/rushikeshhadawale/unified-ai-command-centre/internal/shared/utils/jsonutil"
)

// Setup loads configuration, initializes logging and constructs the API
// client. Every subcommand calls it once at the start of its run function.
func Setup() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return api.NewClient(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout())), nil
}

// NewTable returns a tabwriter configured for console tables.
func NewTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// PrintJSON pretty-prints a raw JSON payload to stdout without interpreting
// its structure.
func PrintJSON(raw json.RawMessage) error {
	out, err := jsonutil.Indent(raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, out)
	return err
}

// StringOrDash dereferences an optional string field for table display.
func StringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
