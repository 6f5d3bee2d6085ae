package main

import (
	"fmt"

	"github.com/jotapp/jot"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of jot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jot version %s\n", jot.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
