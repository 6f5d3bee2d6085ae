package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var createJSON bool

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new empty note",
	Long:  `Create allocates a fresh note id, writes the empty file, and prints the id.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()

		note, err := service.CreateNote(context.Background())
		if err != nil {
			fatal("Failed to create note", err)
		}

		if createJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Println(note.ID)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().BoolVar(&createJSON, "json", false, "Output in JSON format")
}
