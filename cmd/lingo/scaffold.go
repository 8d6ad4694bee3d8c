package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// starterBundle is the template written for each scaffolded locale.
var starterBundle = map[string]any{
	"app": map[string]any{
		"title":   "My Application",
		"welcome": "Welcome, {name}!",
	},
	"items": map[string]any{
		"count": map[string]any{
			"one":   "{count} item",
			"other": "{count} items",
		},
	},
	"footer": map[string]any{
		"updated": "Last updated {when:relative}",
	},
}

func newScaffoldCmd() *cobra.Command {
	var (
		locales []string
		format  string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "scaffold <dir>",
		Short: "Write starter bundle files into a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]

			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q, want json or yaml", format)
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			for _, locale := range locales {
				path := filepath.Join(dir, locale+"."+format)

				if !force {
					if _, err := os.Stat(path); err == nil {
						slog.Warn("file exists, skipping", slog.String("path", path))
						continue
					}
				}

				data, err := encodeBundle(format)
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				slog.Info("wrote bundle", slog.String("path", path))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&locales, "locales", []string{"en"}, "locales to scaffold")
	cmd.Flags().StringVar(&format, "format", "json", "bundle file format (json or yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func encodeBundle(format string) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(starterBundle)
	}
	data, err := json.MarshalIndent(starterBundle, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
