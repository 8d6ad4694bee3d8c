package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/lingokit/lingo/validate"
)

type fileIssues struct {
	file   string
	issues []validate.Issue
}

func newValidateCmd() *cobra.Command {
	var (
		pluralKeys        []string
		required          []string
		optional          []string
		dateFormats       []string
		checkPlaceholders bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file|dir>...",
		Short: "Check bundle files for structural issues",
		Long: `Validate decodes each bundle file (JSON or YAML) and checks plural-object
completeness, date-format tokens and placeholder syntax. Directories are
walked recursively. The command exits non-zero when any issue is found.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectBundleFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no bundle files found under %s", strings.Join(args, ", "))
			}

			cfg := validate.Config{
				PluralKeys:        pluralKeys,
				CheckPlaceholders: checkPlaceholders,
			}
			if len(required) > 0 {
				cfg.RequiredCategories = required
			}
			if len(optional) > 0 {
				cfg.OptionalCategories = optional
			}
			if len(dateFormats) > 0 {
				cfg.AllowedDateFormats = dateFormats
			}

			results, err := validateFiles(files, cfg)
			if err != nil {
				return err
			}

			total := 0
			for _, r := range results {
				for _, issue := range r.issues {
					total++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r.file, issue)
				}
			}

			if total > 0 {
				return fmt.Errorf("%d issue(s) in %d file(s)", total, len(files))
			}
			slog.Info("all bundles valid", slog.Int("files", len(files)))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&pluralKeys, "plural-keys", nil, "keys whose children are plural containers")
	cmd.Flags().StringSliceVar(&required, "required", nil, "required plural categories (default one,other)")
	cmd.Flags().StringSliceVar(&optional, "optional", nil, "optional plural categories (default zero,two,few,many)")
	cmd.Flags().StringSliceVar(&dateFormats, "date-formats", nil, "allowed {date:token} tokens (default date,relative)")
	cmd.Flags().BoolVar(&checkPlaceholders, "check-placeholders", false, "validate placeholder identifier syntax")

	return cmd
}

func collectBundleFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".json", ".yaml", ".yml":
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func validateFiles(files []string, cfg validate.Config) ([]fileIssues, error) {
	var (
		mu      sync.Mutex
		results []fileIssues
	)

	var g errgroup.Group
	g.SetLimit(8)

	for _, file := range files {
		g.Go(func() error {
			bundle, err := decodeFile(file)
			if err != nil {
				return err
			}

			issues := validate.Validate(bundle, cfg)
			if len(issues) == 0 {
				slog.Debug("bundle valid", slog.String("file", file))
				return nil
			}

			mu.Lock()
			results = append(results, fileIssues{file: file, issues: issues})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].file < results[j].file })
	return results, nil
}

func decodeFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bundle map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bundle)
	default:
		err = json.Unmarshal(data, &bundle)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return bundle, nil
}
