package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storyforge/storyserver/internal/character"
	"github.com/storyforge/storyserver/internal/story"
	"github.com/storyforge/storyserver/internal/telemetry"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "StoryServer"
	// serverTitle is the human-readable server title shown by clients.
	serverTitle = "StoryServer MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "2.1.0"
	// serverInstructions is surfaced through the MCP initialize handshake.
	serverInstructions = "StoryServer exposes simple tools to list characters, fetch backstories, " +
		"and save/read markdown stories. Intended for demo and testing."
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP TransportKind = "http"
)

// Config configures how the MCP server is served.
type Config struct {
	Transport TransportKind
	HTTPAddr  string // HTTP server address (e.g., "localhost:8082"). Used by the HTTP transport.
}

// Deps holds the components the tools and prompts operate on.
type Deps struct {
	Characters *character.Registry
	Stories    *story.Repository
	Audit      *telemetry.Emitter
}

// New creates a configured MCP server with every tool and prompt registered.
func New(deps Deps) (*mcp.Server, error) {
	if deps.Characters == nil {
		return nil, fmt.Errorf("character registry is required")
	}
	if deps.Stories == nil {
		return nil, fmt.Errorf("story repository is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{Name: serverName, Title: serverTitle, Version: serverVersion},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)

	registerCharacterTools(mcpServer, deps)
	registerStoryTools(mcpServer, deps)
	registerWritingPrompts(mcpServer)

	return mcpServer, nil
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, cfg Config, deps Deps) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, deps, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg, deps)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, deps Deps, transport mcp.Transport) error {
	mcpServer, err := New(deps)
	if err != nil {
		return err
	}
	return serveWithTransport(ctx, mcpServer, transport)
}

// serveWithTransport blocks until the transport closes or the context ends.
func serveWithTransport(ctx context.Context, mcpServer *mcp.Server, transport mcp.Transport) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
