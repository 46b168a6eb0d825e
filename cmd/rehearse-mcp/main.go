package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"rehearse/internal/adapters/filesystem"
	mcpadapter "rehearse/internal/adapters/mcp"
	"rehearse/internal/config"
)

func main() {
	docFlag := flag.String("doc", config.DocumentPath(), "path to the annotation document")
	baseURLFlag := flag.String("base-url", config.BaseURL(), "player base URL for deep links")
	flag.Parse()

	source := filesystem.NewSource(*docFlag)

	mcpServer := server.NewMCPServer(
		"rehearse-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, source, *baseURLFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("rehearse-mcp: %v", err)
	}
}
