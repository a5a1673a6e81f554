package domain

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storyforge/storyserver/internal/telemetry"
)

// textResult wraps a plain string as an MCP tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// emitAudit records a tool invocation. Audit failures are logged, never
// surfaced: a broken audit store must not fail an otherwise good tool call.
func emitAudit(ctx context.Context, emitter *telemetry.Emitter, tool, detail string) {
	if err := emitter.Emit(ctx, telemetry.Event{Tool: tool, Detail: detail}); err != nil {
		log.Printf("audit event for %s: %v", tool, err)
	}
}
