package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jotapp/jot"
	"github.com/jotapp/jot/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dir     string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A file-backed backend for desktop note frontends",
	Long: `jot persists notes as plain Markdown files in a single flat directory.
The directory is the database: no index, no metadata store, no hidden state.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Load()
		if err != nil {
			fatal("Failed to load config", err)
		}

		level := cfg.LogLevel()
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "d", "", "Notes directory (defaults to the per-OS app data dir)")
}

// notesDir picks the notes directory: --dir first, then the config file,
// then the per-OS default.
func notesDir() string {
	if dir != "" {
		return dir
	}
	if cfg != nil && cfg.DataDir != "" {
		return filepath.Join(cfg.DataDir, "notes")
	}
	return ""
}

// newService wires a service for CLI use, exiting on failure.
func newService(opts ...jot.Option) *jot.Service {
	opts = append([]jot.Option{jot.WithLogger(slog.Default())}, opts...)

	service, err := jot.New(notesDir(), opts...)
	if err != nil {
		fatal("Failed to initialize jot", err)
	}
	return service
}
