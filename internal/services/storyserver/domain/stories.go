package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storyforge/storyserver/internal/story"
	"github.com/storyforge/storyserver/internal/telemetry"
)

// StorySaveInput carries the title and body of a story to persist.
type StorySaveInput struct {
	Title   string `json:"title" jsonschema:"story title, used to derive the filename"`
	Content string `json:"content" jsonschema:"story text to save"`
}

// StorySaveResult reports where the story was written.
type StorySaveResult struct {
	Filename string `json:"filename" jsonschema:"derived story filename"`
	Path     string `json:"path" jsonschema:"absolute path of the written file"`
}

// StoryListInput carries the audit reason for listing stories.
type StoryListInput struct {
	Reason string `json:"reason" jsonschema:"why the listing is requested, recorded for diagnostics"`
}

// StoryListResult lists the saved story filenames.
type StoryListResult struct {
	Stories []string `json:"stories" jsonschema:"story filenames, sorted ascending"`
}

// StoryGetInput selects a story by its exact filename.
type StoryGetInput struct {
	Filename string `json:"filename" jsonschema:"exact story filename as returned by list_stories"`
}

// StorySaveTool defines the MCP tool schema for saving stories.
func StorySaveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "save_story",
		Description: "Save a story to a markdown file with title and creation date.",
	}
}

// StorySaveHandler persists a story and confirms the written path. Saving a
// title whose derived filename already exists overwrites the earlier story.
func StorySaveHandler(repo *story.Repository, emitter *telemetry.Emitter) mcp.ToolHandlerFor[StorySaveInput, StorySaveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StorySaveInput) (*mcp.CallToolResult, StorySaveResult, error) {
		location, err := repo.Save(input.Title, input.Content)
		if err != nil {
			return nil, StorySaveResult{}, err
		}
		emitAudit(ctx, emitter, "save_story", location.Filename)
		result := StorySaveResult{Filename: location.Filename, Path: location.Path}
		return textResult(fmt.Sprintf("Story has been saved at: %s", location.Path)), result, nil
	}
}

// StoryListTool defines the MCP tool schema for listing stories.
func StoryListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_stories",
		Description: "List all saved story files in markdown format.",
	}
}

// StoryListHandler lists saved story filenames. A missing story directory is
// an empty listing, not an error.
func StoryListHandler(repo *story.Repository, emitter *telemetry.Emitter) mcp.ToolHandlerFor[StoryListInput, StoryListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StoryListInput) (*mcp.CallToolResult, StoryListResult, error) {
		filenames, err := repo.List(input.Reason)
		if err != nil {
			return nil, StoryListResult{}, err
		}
		emitAudit(ctx, emitter, "list_stories", input.Reason)
		return nil, StoryListResult{Stories: filenames}, nil
	}
}

// StoryGetTool defines the MCP tool schema for reading a story.
func StoryGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_story",
		Description: "Read the content of a specific story file.",
	}
}

// StoryGetHandler returns the full raw content of one story file.
func StoryGetHandler(repo *story.Repository, emitter *telemetry.Emitter) mcp.ToolHandlerFor[StoryGetInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StoryGetInput) (*mcp.CallToolResult, any, error) {
		content, err := repo.Get(input.Filename)
		if err != nil {
			return nil, nil, err
		}
		emitAudit(ctx, emitter, "get_story", input.Filename)
		return textResult(content), nil, nil
	}
}
