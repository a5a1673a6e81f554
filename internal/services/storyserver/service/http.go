package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// mcpEndpoint is the HTTP path clients connect to.
	mcpEndpoint = "/mcp"
	// defaultHTTPAddr binds loopback-only unless configured otherwise.
	defaultHTTPAddr = "localhost:8082"
	// shutdownTimeout bounds graceful HTTP shutdown after context cancellation.
	shutdownTimeout = 10 * time.Second
)

// runWithHTTPTransport serves the MCP server over streamable HTTP until the
// context ends, then shuts the HTTP server down gracefully.
func runWithHTTPTransport(ctx context.Context, cfg Config, deps Deps) error {
	addr := cfg.HTTPAddr
	if addr == "" {
		addr = defaultHTTPAddr
	}

	mcpServer, err := New(deps)
	if err != nil {
		return err
	}

	handler := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return mcpServer },
		nil,
	)

	mux := http.NewServeMux()
	mux.Handle(mcpEndpoint, handler)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("MCP endpoint: http://%s%s", addr, mcpEndpoint)
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve MCP over HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown MCP HTTP server: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve MCP over HTTP: %w", err)
	}
	return nil
}
