package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/javeriapervaiz-debug/BrandAudit-sub002/internal/adapters/inbound/mcp"
)

func newMCPCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the brandaudit MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(flags))
	return cmd
}

func newMCPServeCmd(flags *globalFlags) *cobra.Command {
	var noStore bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start brandaudit MCP server (stdio)",
		Long:  "Start the brandaudit MCP server using stdio transport. This lets AI assistants detect brands, search the catalog and audit pages.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol, so logs go to stderr only
			a, err := openApp(cmd.Context(), flags, appOptions{store: !noStore, stderr: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			s := mcpadapter.NewBrandAuditMCPServer(a.detect, a.audits)
			a.logger.Info("mcp server ready", "project", a.projectPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().BoolVar(&noStore, "no-store", false, "Do not save audits to history")

	return cmd
}
