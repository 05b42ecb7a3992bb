// Package main provides the pedigree binary entry point.
// It parses PED files and prints cohorts, probands and lineage walks.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pedigraph/internal/config"
	"github.com/katalvlaran/pedigraph/pedigree"
)

const (
	Version = "0.1.0"
	appName = "pedigree"
)

func main() {
	if err := rootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries state resolved once in PersistentPreRunE.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

func rootCmd(logOut io.Writer) *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Query PED pedigree files",
		Long: `pedigree parses tab-delimited PED files (family, individual, paternal,
maternal, sex, phenotype...) and answers cohort, sibling, trio, quad
and lineage queries over the resulting relationship graph.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Merge(&config.Config{LogLevel: logLevel})
			}
			level, err := config.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.log)
			a.log.Info("Running " + strings.Join(os.Args, " "))

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		statsCmd(a),
		filterCmd(a),
		cohortCmd(a),
		siblingsCmd(a),
		triosCmd(a),
		quadsCmd(a),
		lineageCmd(a),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

// load parses path with the configured options and applies the configured filter.
func (a *app) load(path string) (*pedigree.Pedigree, error) {
	p, err := pedigree.ParseFile(path, a.cfg.ParseOptions(a.log)...)
	if err != nil {
		return nil, err
	}
	if f := a.cfg.Filter.PedigreeFilter(); !f.IsZero() {
		removed := p.Filter(f)
		a.log.Debug("config filter applied", "file", path, "removed", removed)
	}
	a.log.Debug("loaded pedigree", "file", path, "individuals", p.Len(), "families", len(p.Families()))

	return p, nil
}
