package service

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storyforge/storyserver/internal/prompt"
	"github.com/storyforge/storyserver/internal/services/storyserver/domain"
)

func registerCharacterTools(mcpServer *mcp.Server, deps Deps) {
	mcp.AddTool(mcpServer, domain.CharactersListTool(), domain.CharactersListHandler(deps.Characters, deps.Audit))
	mcp.AddTool(mcpServer, domain.BackstoryTool(), domain.BackstoryHandler(deps.Characters, deps.Audit))
	mcp.AddTool(mcpServer, domain.SuperpowerTool(), domain.SuperpowerHandler(deps.Characters, deps.Audit))
}

func registerStoryTools(mcpServer *mcp.Server, deps Deps) {
	mcp.AddTool(mcpServer, domain.StorySaveTool(), domain.StorySaveHandler(deps.Stories, deps.Audit))
	mcp.AddTool(mcpServer, domain.StoryListTool(), domain.StoryListHandler(deps.Stories, deps.Audit))
	mcp.AddTool(mcpServer, domain.StoryGetTool(), domain.StoryGetHandler(deps.Stories, deps.Audit))
}

// registerWritingPrompts registers the masterclass prompts.
func registerWritingPrompts(mcpServer *mcp.Server) {
	for _, template := range prompt.All() {
		mcpServer.AddPrompt(domain.WritingPrompt(template), domain.WritingPromptHandler(template))
	}
}
