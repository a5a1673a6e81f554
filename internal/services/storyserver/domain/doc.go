// Package domain defines the StoryServer MCP tool and prompt contracts:
// typed inputs and results per tool, the tool schemas, and the handlers
// that execute them against the character registry and story repository.
package domain
