package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cookbook/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cookbook over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Options: options(cmd),
				Addr:    addr,
			})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "Listen address (overrides the configuration)")
	return cmd
}

func (c *CLI) newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the cookbook as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ServeMCP(cmd.Context(), options(cmd))
		},
	}
}
