package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storyforge/storyserver/internal/prompt"
)

// WritingPrompt defines the MCP prompt schema for a masterclass template.
func WritingPrompt(template prompt.Template) *mcp.Prompt {
	return &mcp.Prompt{
		Name:        template.Name,
		Description: template.Description,
		Arguments: []*mcp.PromptArgument{
			{
				Name:        template.Argument,
				Description: fmt.Sprintf("%s (default: %s)", template.ArgumentDescription, template.Default),
				Required:    false,
			},
		},
	}
}

// WritingPromptHandler renders a masterclass template into one user message.
// An omitted or blank argument falls back to the template default.
func WritingPromptHandler(template prompt.Template) mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		var param string
		if req != nil && req.Params != nil {
			param = req.Params.Arguments[template.Argument]
		}
		return &mcp.GetPromptResult{
			Description: template.Description,
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: template.Render(param)},
				},
			},
		}, nil
	}
}
