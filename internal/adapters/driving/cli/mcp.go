package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/placehold/internal/adapters/driving/mcp"
	"github.com/custodia-labs/placehold/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can build
placeholder URLs and image tags and read saved presets.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Settings are reloaded whenever config.toml changes, so a running server
picks up "placehold settings ..." edits without a restart.

Examples:
  # Stdio mode (default)
  placehold mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  placehold mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "placehold": {
        "command": "/path/to/placehold",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Placeholder: placeholderService,
		Preset:      presetService,
		Settings:    settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if configWatcher != nil && settingsService != nil {
		go func() {
			err := configWatcher(ctx, func() {
				if err := settingsService.Reload(); err != nil {
					logger.Warn("Reloading settings: %v", err)
				}
			})
			if err != nil {
				logger.Warn("Config watcher stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
