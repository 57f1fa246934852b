package main

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the resolved run configuration. Values come from flags,
// XLSYNC_* environment variables, and .env files, in that precedence.
type config struct {
	OldPath        string
	NewPath        string
	CheckDirectory bool
	AllowDelete    bool
	SyncType       string
	IgnoreSheet    string
	IgnoreFile     string

	Verbose   bool
	Quiet     bool
	LogFormat string
}

// bindEnv wires the command flags to viper so every flag can also be set
// via an XLSYNC_* environment variable (dashes become underscores, e.g.
// XLSYNC_ALLOW_DELETE=true).
func bindEnv(cmd *cobra.Command) {
	_ = godotenv.Load(".env")

	viper.SetEnvPrefix("XLSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(cmd.Flags())
}

// loadConfig reads the merged flag/env values out of viper.
func loadConfig() *config {
	return &config{
		OldPath:        viper.GetString("old-file"),
		NewPath:        viper.GetString("new-file"),
		CheckDirectory: viper.GetBool("check-directory"),
		AllowDelete:    viper.GetBool("allow-delete"),
		SyncType:       viper.GetString("sync-type"),
		IgnoreSheet:    viper.GetString("ignore-sheet-regex"),
		IgnoreFile:     viper.GetString("ignore-file-regex"),
		Verbose:        viper.GetBool("verbose"),
		Quiet:          viper.GetBool("quiet"),
		LogFormat:      viper.GetString("log-format"),
	}
}

// newLogger builds the process logger. Level precedence: --quiet, then
// --verbose, then LOG_LEVEL, then info.
func newLogger(cfg *config) zerolog.Logger {
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && os.Getenv("LOG_LEVEL") != "" {
		level = lvl
	}
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	if cfg.Quiet {
		level = zerolog.WarnLevel
	}

	var logger zerolog.Logger
	switch {
	case cfg.LogFormat == "json":
		logger = zerolog.New(os.Stderr)
	case cfg.LogFormat == "console" || isTerminal():
		logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		})
	default:
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().Timestamp().Logger()
}

// isTerminal checks if stderr is a terminal.
func isTerminal() bool {
	if fileInfo, _ := os.Stderr.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}
	return false
}
