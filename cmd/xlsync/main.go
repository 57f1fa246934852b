// Package main provides the CLI entry point for xlsync.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bberka/xlsync/pkg/xlsync"
	"github.com/bberka/xlsync/pkg/xlsync/reconcile"
)

var (
	oldPath         string
	newPath         string
	checkDirectory  bool
	allowDelete     bool
	syncType        string
	ignoreSheetExpr string
	ignoreFileExpr  string
	verbose         bool
	quiet           bool
	logFormat       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsync",
		Short: "Sync spreadsheet columns between old and new Excel files",
		Long: `xlsync reconciles the column structure of an old Excel file (or a
directory tree of them) against a new one: columns present only in the new
file are added, columns present only in the old file are optionally deleted,
and same-position name changes are applied as renames. Row data in the old
file is kept aligned with its header throughout. The new file is never
modified.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&oldPath, "old-file", "", "Path to the old Excel file or directory")
	rootCmd.Flags().StringVar(&newPath, "new-file", "", "Path to the new Excel file or directory")
	rootCmd.Flags().BoolVar(&checkDirectory, "check-directory", false, "Treat the paths as directories and sync Excel files inside them, paired by relative path")
	rootCmd.Flags().BoolVar(&allowDelete, "allow-delete", false, "Allow deletion of old columns that are absent from the new file")
	rootCmd.Flags().StringVar(&syncType, "sync-type", reconcile.LayoutAppend.String(), "Where to place new columns: rightmost (append) or moverows (insert in place, shifting data)")
	rootCmd.Flags().StringVar(&ignoreSheetExpr, "ignore-sheet-regex", "", "Skip sheets whose name matches this pattern (matched from the start of the name)")
	rootCmd.Flags().StringVar(&ignoreFileExpr, "ignore-file-regex", "", "Skip files whose relative path matches this pattern (directory mode)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "auto", "Log format: auto, console, json")

	_ = rootCmd.MarkFlagRequired("old-file")
	_ = rootCmd.MarkFlagRequired("new-file")

	bindEnv(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	// An unsupported layout is a configuration error and fatal for the
	// whole run, unlike the per-file errors below.
	layout, err := reconcile.ParseLayout(cfg.SyncType)
	if err != nil {
		return err
	}

	opts := xlsync.Options{
		AllowDelete: cfg.AllowDelete,
		Layout:      layout,
		Logger:      &logger,
	}
	if cfg.IgnoreSheet != "" {
		re, err := xlsync.CompilePattern(cfg.IgnoreSheet)
		if err != nil {
			return fmt.Errorf("invalid --ignore-sheet-regex: %w", err)
		}
		opts.IgnoreSheet = re
	}
	if cfg.IgnoreFile != "" {
		re, err := xlsync.CompilePattern(cfg.IgnoreFile)
		if err != nil {
			return fmt.Errorf("invalid --ignore-file-regex: %w", err)
		}
		opts.IgnoreFile = re
	}

	defer logger.Info().Msg("comparison and sync completed")

	if cfg.CheckDirectory {
		res, err := xlsync.SyncTrees(cfg.OldPath, cfg.NewPath, opts)
		if err != nil {
			logger.Error().Err(err).Msg("both paths must be existing directories when using --check-directory")
			return nil
		}
		logger.Info().Msg(res.Summary())
		return nil
	}

	for _, p := range []string{cfg.OldPath, cfg.NewPath} {
		if _, err := os.Stat(p); err != nil {
			logger.Error().Str("path", p).Msg("provided file does not exist")
			return nil
		}
	}

	if _, err := xlsync.SyncFiles(cfg.OldPath, cfg.NewPath, opts); err != nil {
		logger.Error().Err(err).Msg("sync failed")
	}
	return nil
}
