// Package cli implements the sharectl command-line interface for working
// with catalog configuration files.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"deltashare/internal/catalog/file"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		catalogPath string
		format      string
	)

	rootCmd := &cobra.Command{
		Use:           "sharectl",
		Short:         "Inspect and validate sharing catalog files",
		Long:          "sharectl loads a declarative catalog file (YAML, JSON, or TOML) and validates or queries it without starting a server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "path to the catalog file (required)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "catalog file format: yaml, json, toml (default: inferred from extension)")
	_ = rootCmd.MarkPersistentFlagRequired("catalog")

	rootCmd.AddCommand(newValidateCmd(&catalogPath, &format))
	rootCmd.AddCommand(newListCmd(&catalogPath, &format))

	return rootCmd
}

// openCatalog loads the catalog file named by the persistent flags. The
// format flag wins; otherwise the file extension decides, falling back to
// YAML.
func openCatalog(path, format string) (*file.Catalog, error) {
	cfg := file.NewConfig(path)
	name := format
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	if name != "" {
		f, err := file.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		cfg = cfg.WithFormat(f)
	}
	// The CLI output is the catalog content itself; keep the loader quiet.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return file.New(cfg, logger)
}
