package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/nami2111/nft-studio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdin/stdout",
	Long: `Run the MCP server over stdin/stdout.

Configure it in your MCP client (e.g., Claude Desktop) as a stdio server.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}

	server.Version = Version
	srv := server.New(eng)
	log.Printf("MCP server ready")
	return srv.Run()
}
