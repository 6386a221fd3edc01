package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"scope-mcp/internal/config"
)

// Server wires the inference core into an MCP stdio server.
type Server struct {
	cfg *config.AppConfig
}

// NewServer creates a new MCP server.
func NewServer(cfg *config.AppConfig) *Server {
	return &Server{cfg: cfg}
}

// Run registers the tools and serves the stdio transport until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "scope-mcp",
		Version: "0.1.0",
	}, nil)

	if err := s.registerTools(server); err != nil {
		return err
	}

	log.Info().Msg("MCP Server starting Stdio loop")
	return server.Run(ctx, &mcp.StdioTransport{})
}

// textResult renders a payload the way clients expect: indented JSON in a
// single text content block.
func textResult(data any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(out)}},
	}, nil
}
