package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	listJSON bool
	listYAML bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Long: `List prints every note id, newest first. With --json or --yaml the full
records (id, path, content) are printed instead.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()

		notes, err := service.ListNotes(context.Background())
		if err != nil {
			fatal("Failed to list notes", err)
		}

		switch {
		case listJSON:
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
		case listYAML:
			encoder := yaml.NewEncoder(os.Stdout)
			defer encoder.Close()
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode YAML", err)
			}
		default:
			for _, note := range notes {
				fmt.Println(note.ID)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
}
