package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var updateContent string

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace a note's content",
	Long: `Update replaces the note's content in full. Content comes from --content,
or from stdin when --content is "-". Updating an unknown id creates the note.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		content := updateContent
		if content == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		service := newService()

		if err := service.UpdateNote(context.Background(), id, content); err != nil {
			fatal("Failed to update note", err)
		}

		fmt.Printf("Note updated: %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateContent, "content", "", `New note content ("-" reads stdin)`)
}
