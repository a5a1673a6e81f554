package domain

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storyforge/storyserver/internal/character"
	"github.com/storyforge/storyserver/internal/telemetry"
)

// CharacterInput selects a character by name.
type CharacterInput struct {
	Character string `json:"character" jsonschema:"character name (case-insensitive)"`
}

// CharacterListResult lists the available character names.
type CharacterListResult struct {
	Characters []string `json:"characters" jsonschema:"all available character names"`
}

// CharactersListTool defines the MCP tool schema for listing characters.
func CharactersListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_characters",
		Description: "Get the list of all available character names.",
	}
}

// CharactersListHandler returns every registered character name in table order.
func CharactersListHandler(registry *character.Registry, emitter *telemetry.Emitter) mcp.ToolHandlerFor[struct{}, CharacterListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, CharacterListResult, error) {
		names := registry.Names()
		emitAudit(ctx, emitter, "get_characters", "")
		return nil, CharacterListResult{Characters: names}, nil
	}
}

// BackstoryTool defines the MCP tool schema for character backstories.
func BackstoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_backstory",
		Description: "Get the backstory of a specified character.",
	}
}

// BackstoryHandler looks up one character's backstory.
func BackstoryHandler(registry *character.Registry, emitter *telemetry.Emitter) mcp.ToolHandlerFor[CharacterInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterInput) (*mcp.CallToolResult, any, error) {
		backstory, err := registry.Backstory(input.Character)
		if err != nil {
			return nil, nil, err
		}
		emitAudit(ctx, emitter, "get_backstory", input.Character)
		return textResult(backstory), nil, nil
	}
}

// SuperpowerTool defines the MCP tool schema for character superpowers.
func SuperpowerTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_superpower",
		Description: "Get the superpower of a specified character.",
	}
}

// SuperpowerHandler looks up one character's superpower.
func SuperpowerHandler(registry *character.Registry, emitter *telemetry.Emitter) mcp.ToolHandlerFor[CharacterInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterInput) (*mcp.CallToolResult, any, error) {
		superpower, err := registry.Superpower(input.Character)
		if err != nil {
			return nil, nil, err
		}
		emitAudit(ctx, emitter, "get_superpower", input.Character)
		return textResult(superpower), nil, nil
	}
}
