package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/screencap/internal/lifecycle"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the screencap tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes window
screenshot tools. AI agents can list visible applications and capture
windows without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for Claude Code / MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  screencap serve
  screencap serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Duration("grace", 2*time.Second, "Graceful shutdown window before force exit")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	grace, _ := cmd.Flags().GetDuration("grace")

	srv, err := newMCPServer()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	machine := lifecycle.New(grace)
	machine.Watch()

	return srv.serve(transport, port)
}
