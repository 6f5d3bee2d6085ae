package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jotapp/jot"
	"github.com/jotapp/jot/internal/mcpserver"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the note tools over MCP",
	Long: `Serve exposes create_note, list_notes, update_note and delete_note as MCP
tools over the Streamable HTTP transport, for agent frontends.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addr := serveAddr
		if addr == "" {
			addr = cfg.Serve.Addr
		}

		service := newService()
		server := mcpserver.NewServer(service, jot.Version, slog.Default())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := server.Serve(ctx, addr); err != nil {
			fatal("Server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, 127.0.0.1:8137)")
}
