package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jotapp/jot"
	"github.com/spf13/cobra"
)

var (
	watchPattern string
	watchIgnore  []string
	watchJSON    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream note change events",
	Long: `Watch follows the notes directory and prints one line per change
(CREATE, MODIFY, DELETE) until interrupted. External edits count too.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ignore := cfg.Watch.Ignore
		if cmd.Flags().Changed("ignore") {
			ignore = watchIgnore
		}

		service := newService(
			jot.WithIgnore(ignore...),
			jot.WithDebounce(cfg.Debounce()),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		for event := range events {
			if watchJSON {
				if err := encoder.Encode(event); err != nil {
					fatal("Failed to encode JSON", err)
				}
				continue
			}
			fmt.Println(event.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*", "Only report ids matching this glob")
	watchCmd.Flags().StringSliceVar(&watchIgnore, "ignore", nil, "Glob patterns to exclude (overrides config)")
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "Output events as JSON lines")
}
